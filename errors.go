package gotimers

import "github.com/ghettovoice/gotimers/internal/errorutil"

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrManagerClosed is returned when scheduling on a closed manager.
	ErrManagerClosed Error = "timers manager closed"
)

// Error represents a gotimers error.
// See [errorutil.Error].
type Error = errorutil.Error

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}

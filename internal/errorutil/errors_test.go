package errorutil_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/gotimers/internal/errorutil"
)

const errSentinel errorutil.Error = "sentinel"

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []any
		wantMsg string
	}{
		{"no args", nil, "sentinel"},
		{"error arg", []any{errors.New("cause")}, "sentinel: cause"},
		{"wrapped error arg", []any{errorutil.NewWrapperError(errSentinel, "cause")}, "sentinel: cause"},
		{"string arg", []any{"detail"}, "sentinel: detail"},
		{"format args", []any{"detail %d", 42}, "sentinel: detail 42"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(errSentinel, c.args...)
			if !errors.Is(err, errSentinel) {
				t.Errorf("errors.Is(err, sentinel) = false, want true")
			}
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("err.Error() = %q, want %q", got, c.wantMsg)
			}
		})
	}
}

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := errorutil.Errorf("timer %d", 7)
	if got, want := err.Error(), "timer 7"; got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}
}

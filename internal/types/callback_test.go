package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gotimers/internal/types"
)

func TestCallbackManager(t *testing.T) {
	t.Parallel()

	var m types.CallbackManager[func() int]

	if got, want := m.Len(), 0; got != want {
		t.Fatalf("m.Len() = %d, want %d", got, want)
	}

	remove1 := m.Add(func() int { return 1 })
	m.Add(func() int { return 2 })
	m.Add(func() int { return 3 })

	collect := func() []int {
		var out []int
		for fn := range m.All() {
			out = append(out, fn())
		}
		return out
	}

	if diff := cmp.Diff(collect(), []int{1, 2, 3}); diff != "" {
		t.Errorf("callbacks mismatch (-got +want):\n%s", diff)
	}

	remove1()
	remove1() // safe to call twice

	if got, want := m.Len(), 2; got != want {
		t.Errorf("m.Len() = %d, want %d", got, want)
	}
	if diff := cmp.Diff(collect(), []int{2, 3}); diff != "" {
		t.Errorf("callbacks mismatch after remove (-got +want):\n%s", diff)
	}
}

func TestCallbackManager_NilReceiver(t *testing.T) {
	t.Parallel()

	var m *types.CallbackManager[func()]

	if got, want := m.Len(), 0; got != want {
		t.Errorf("m.Len() = %d, want %d", got, want)
	}
	for range m.All() {
		t.Error("nil manager yielded a callback")
	}
}

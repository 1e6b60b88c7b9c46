package statusflow_test

import (
	"errors"
	"testing"

	"github.com/straye-as/fieldservice-api/internal/statusflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dispatchSteps = []string{
	"pending", "assigned", "acknowledged", "en_route", "on_site", "in_progress", "completed",
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		steps   []string
		current string
		wantErr bool
	}{
		{"valid flow", []string{"a", "b"}, "a", false},
		{"single step", []string{"a"}, "a", true},
		{"duplicate steps", []string{"a", "b", "a"}, "a", true},
		{"unknown current", []string{"a", "b"}, "c", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := statusflow.New(tt.steps, tt.current)
			if tt.wantErr {
				assert.ErrorIs(t, err, statusflow.ErrInvalidFlow)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_CopiesSteps(t *testing.T) {
	steps := []string{"a", "b", "c"}
	f, err := statusflow.New(steps, "a")
	require.NoError(t, err)

	steps[1] = "z"
	assert.Equal(t, []string{"a", "b", "c"}, f.Steps())
}

func TestFlow_AdvanceAndRetreat(t *testing.T) {
	f := statusflow.MustNew(dispatchSteps, "pending")

	tr, err := f.Advance()
	require.NoError(t, err)
	assert.Equal(t, "pending", tr.From)
	assert.Equal(t, "assigned", tr.To)
	assert.True(t, tr.Changed)

	tr, err = f.Retreat()
	require.NoError(t, err)
	assert.Equal(t, "pending", tr.To)
}

func TestFlow_BoundariesAreNoOps(t *testing.T) {
	first := statusflow.MustNew(dispatchSteps, "pending")
	_, err := first.Retreat()
	assert.ErrorIs(t, err, statusflow.ErrRejected)
	assert.Equal(t, "pending", first.Current())

	last := statusflow.MustNew(dispatchSteps, "completed")
	_, err = last.Advance()
	assert.ErrorIs(t, err, statusflow.ErrRejected)
	assert.Equal(t, "completed", last.Current())
}

// Every pair (i, j): jumpTo succeeds iff |j-i| <= 1 and lands on j.
func TestFlow_JumpToWindow(t *testing.T) {
	n := len(dispatchSteps)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			f := statusflow.MustNew(dispatchSteps, dispatchSteps[i])
			_, err := f.JumpTo(dispatchSteps[j])

			d := i - j
			if d < 0 {
				d = -d
			}
			if d <= 1 {
				require.NoError(t, err, "jump %d -> %d", i, j)
				assert.Equal(t, j, f.Index())
			} else {
				assert.True(t, errors.Is(err, statusflow.ErrRejected), "jump %d -> %d", i, j)
				assert.Equal(t, i, f.Index())
			}
			assert.Equal(t, d <= 1, statusflow.MustNew(dispatchSteps, dispatchSteps[i]).CanJumpTo(dispatchSteps[j]))
		}
	}
}

func TestFlow_JumpFromOnSite(t *testing.T) {
	f := statusflow.MustNew(dispatchSteps, "on_site")
	require.Equal(t, 4, f.Index())

	_, err := f.JumpTo("completed")
	assert.ErrorIs(t, err, statusflow.ErrRejected)
	assert.Equal(t, "on_site", f.Current())

	tr, err := f.JumpTo("in_progress")
	require.NoError(t, err)
	assert.Equal(t, "in_progress", tr.To)
	assert.Equal(t, "in_progress", f.Current())
}

func TestFlow_JumpToCurrentIsUnchanged(t *testing.T) {
	f := statusflow.MustNew(dispatchSteps, "assigned")
	tr, err := f.JumpTo("assigned")
	require.NoError(t, err)
	assert.False(t, tr.Changed)
}

func TestFlow_JumpToUnknownStep(t *testing.T) {
	f := statusflow.MustNew(dispatchSteps, "assigned")
	_, err := f.JumpTo("cancelled")
	assert.ErrorIs(t, err, statusflow.ErrRejected)
}

func TestFlow_DisabledRejectsEverything(t *testing.T) {
	f := statusflow.MustNew(dispatchSteps, "en_route")
	f.SetDisabled(true)

	_, err := f.Advance()
	assert.ErrorIs(t, err, statusflow.ErrRejected)
	_, err = f.Retreat()
	assert.ErrorIs(t, err, statusflow.ErrRejected)
	_, err = f.JumpTo("on_site")
	assert.ErrorIs(t, err, statusflow.ErrRejected)
	assert.False(t, f.CanJumpTo("on_site"))
	assert.Equal(t, "en_route", f.Current())

	f.SetDisabled(false)
	_, err = f.Advance()
	assert.NoError(t, err)
}

func TestWindow(t *testing.T) {
	steps := []string{"open", "planned", "closed"}

	v := statusflow.Window(steps, "open")
	assert.True(t, v.Previous.Empty)
	assert.Equal(t, "open", v.Current.Step)
	assert.Equal(t, "planned", v.Next.Step)

	v = statusflow.Window(steps, "planned")
	assert.Equal(t, "open", v.Previous.Step)
	assert.Equal(t, "closed", v.Next.Step)
	assert.False(t, v.Previous.Empty)
	assert.False(t, v.Next.Empty)

	v = statusflow.Window(steps, "closed")
	assert.Equal(t, "planned", v.Previous.Step)
	assert.True(t, v.Next.Empty)
	assert.Equal(t, 3, v.Next.Index)

	v = statusflow.Window(steps, "unknown")
	assert.True(t, v.Current.Empty)
}

func TestFlow_ViewDoesNotMutate(t *testing.T) {
	f := statusflow.MustNew(dispatchSteps, "on_site")
	_ = f.View()
	assert.Equal(t, "on_site", f.Current())
}

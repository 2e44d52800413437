package saga

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recorder struct {
	calls []string
}

func (r *recorder) step(name string, doErr, undoErr error) Step {
	return Step{
		Name: name,
		Do: func(ctx context.Context) error {
			r.calls = append(r.calls, "do "+name)
			return doErr
		},
		Undo: func(ctx context.Context) error {
			r.calls = append(r.calls, "undo "+name)
			return undoErr
		},
	}
}

func TestRun(t *testing.T) {
	boom := errors.New("boom")

	t.Run("AllSucceed", func(t *testing.T) {
		r := &recorder{}
		s := New("ok", zap.NewNop()).
			Add(r.step("flight", nil, nil)).
			Add(r.step("taxi", nil, nil))

		assert.NoError(t, s.Run(context.Background()))
		assert.Equal(t, []string{"do flight", "do taxi"}, r.calls)
	})

	t.Run("FirstStepFailsNothingToUndo", func(t *testing.T) {
		r := &recorder{}
		s := New("first", zap.NewNop()).
			Add(r.step("flight", boom, nil)).
			Add(r.step("taxi", nil, nil))

		assert.ErrorIs(t, s.Run(context.Background()), boom)
		assert.Equal(t, []string{"do flight"}, r.calls)
	})

	t.Run("UnwindsInReverse", func(t *testing.T) {
		r := &recorder{}
		s := New("reverse", zap.NewNop()).
			Add(r.step("flight", nil, nil)).
			Add(r.step("taxi", nil, nil)).
			Add(r.step("hotel", boom, nil))

		assert.ErrorIs(t, s.Run(context.Background()), boom)
		assert.Equal(t, []string{"do flight", "do taxi", "do hotel", "undo taxi", "undo flight"}, r.calls)
	})

	t.Run("CompensationFailureKeepsOriginalError", func(t *testing.T) {
		r := &recorder{}
		undoErr := errors.New("undo failed")
		var failures []CompensationFailure
		s := New("comp", zap.NewNop()).
			Add(r.step("flight", nil, nil)).
			Add(r.step("taxi", nil, undoErr)).
			Add(r.step("hotel", boom, nil))
		s.OnCompensationFailure = func(ctx context.Context, f CompensationFailure) {
			failures = append(failures, f)
		}

		err := s.Run(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"do flight", "do taxi", "do hotel", "undo taxi", "undo flight"}, r.calls)
		if assert.Len(t, failures, 1) {
			assert.Equal(t, "taxi", failures[0].Step)
			assert.ErrorIs(t, failures[0].Err, undoErr)
		}
	})

	t.Run("CompensatesAfterCancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var undoCtxErr error
		s := New("cancel", zap.NewNop()).
			Add(Step{
				Name: "flight",
				Do:   func(ctx context.Context) error { return nil },
				Undo: func(ctx context.Context) error {
					undoCtxErr = ctx.Err()
					return nil
				},
			}).
			Add(Step{
				Name: "taxi",
				Do: func(ctx context.Context) error {
					cancel()
					return ctx.Err()
				},
			})

		assert.ErrorIs(t, s.Run(ctx), context.Canceled)
		assert.NoError(t, undoCtxErr)
	})
}

// Package saga runs an ordered list of steps where each completed step can
// be undone. On the first failing step the steps that already completed are
// undone in reverse order.
package saga

import (
	"context"

	"go.uber.org/zap"
)

type Step struct {
	Name string
	Do   func(ctx context.Context) error
	// Undo may be nil for steps that leave nothing behind.
	Undo func(ctx context.Context) error
}

// CompensationFailure describes an Undo that returned an error. The
// resource the step created is still in place.
type CompensationFailure struct {
	Step string
	Err  error
}

type Saga struct {
	ID     string
	steps  []Step
	logger *zap.Logger

	// OnCompensationFailure, if set, is called for every failed Undo.
	OnCompensationFailure func(ctx context.Context, f CompensationFailure)
}

func New(id string, logger *zap.Logger) *Saga {
	return &Saga{ID: id, logger: logger.With(zap.String("saga_id", id))}
}

func (s *Saga) Add(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// Run executes the steps in order. It returns the error of the first
// failing step after compensating; failures during compensation are logged
// and reported through OnCompensationFailure but never replace that error.
func (s *Saga) Run(ctx context.Context) error {
	for i, step := range s.steps {
		s.logger.Info("saga step started", zap.String("step", step.Name))
		if err := step.Do(ctx); err != nil {
			s.logger.Error("saga step failed", zap.String("step", step.Name), zap.Error(err))
			s.compensate(ctx, s.steps[:i])
			return err
		}
		s.logger.Info("saga step completed", zap.String("step", step.Name))
	}
	return nil
}

func (s *Saga) compensate(ctx context.Context, done []Step) {
	// Compensation must run even if the request that started the saga was
	// cancelled.
	ctx = context.WithoutCancel(ctx)
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.Undo == nil {
			continue
		}
		s.logger.Warn("compensating saga step", zap.String("step", step.Name))
		if err := step.Undo(ctx); err != nil {
			s.logger.Error("compensation failed", zap.String("step", step.Name), zap.Error(err))
			if s.OnCompensationFailure != nil {
				s.OnCompensationFailure(ctx, CompensationFailure{Step: step.Name, Err: err})
			}
		}
	}
}

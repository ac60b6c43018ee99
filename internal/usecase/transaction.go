package usecase

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Transaction runs writes that span more than one table. When a step fails,
// the undo functions of the steps that already succeeded run in reverse.
type Transaction struct {
	steps []txnStep
}

type txnStep struct {
	name string
	do   func(context.Context) error
	undo func(context.Context) error
}

// StepError names the step that failed and how many steps were undone.
type StepError struct {
	Step       string
	RolledBack int
	Err        error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v (rolled back %d steps)", e.Step, e.Err, e.RolledBack)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func NewTransaction() *Transaction {
	return &Transaction{}
}

// Step appends a write. undo may be nil for the last step.
func (t *Transaction) Step(name string, do, undo func(context.Context) error) {
	t.steps = append(t.steps, txnStep{name: name, do: do, undo: undo})
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, s := range t.steps {
		if err := s.do(ctx); err != nil {
			return &StepError{Step: s.name, RolledBack: t.rollback(ctx, i), Err: err}
		}
	}
	return nil
}

func (t *Transaction) rollback(ctx context.Context, failed int) int {
	// The request may already be cancelled; undo still has to reach the database.
	ctx = context.WithoutCancel(ctx)

	undone := 0
	for i := failed - 1; i >= 0; i-- {
		s := t.steps[i]
		if s.undo == nil {
			continue
		}
		if err := s.undo(ctx); err != nil {
			log.WithError(err).WithField("step", s.name).
				Error("⚠️ undo failed, data may be inconsistent")
			continue
		}
		undone++
	}
	return undone
}

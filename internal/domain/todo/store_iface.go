package todo

import (
	"context"
	"time"
)

type StoreAPI interface {
	Create(ctx context.Context, item Todo) error
	// FindExisting returns the pending todo for the dedupe key, if any.
	FindExisting(ctx context.Context, employeeID, todoType, cycleID string) (Todo, bool, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Todo, error)
	Complete(ctx context.Context, id string, at time.Time) error
	// SweepOverdue transitions pending todos whose due date has passed to
	// overdue and reports how many changed.
	SweepOverdue(ctx context.Context, now time.Time) (int, error)
}

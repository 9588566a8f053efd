package assessment

import "context"

type StoreAPI interface {
	Create(ctx context.Context, cycle Cycle) error
	FindByID(ctx context.Context, id string) (Cycle, error)
	FindActive(ctx context.Context) ([]Cycle, error)
	List(ctx context.Context, status string) ([]Cycle, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

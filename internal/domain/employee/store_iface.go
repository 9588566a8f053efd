package employee

import "context"

type StoreAPI interface {
	FindByID(ctx context.Context, id string) (Employee, error)
	FindByDepartment(ctx context.Context, department string) ([]Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
}

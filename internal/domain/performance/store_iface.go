package performance

import "context"

type StoreAPI interface {
	Create(ctx context.Context, record Record) error
	FindByID(ctx context.Context, id string) (Record, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (Record, error)
	FindByPeriod(ctx context.Context, period string) ([]Record, error)
	UpdateScores(ctx context.Context, record Record) error
	// ApplyRanks writes a period's recomputed positions back in one shot.
	ApplyRanks(ctx context.Context, period string, ranks []RankAssignment) error
}

package peerreview

import "context"

type StoreAPI interface {
	FindByID(ctx context.Context, id string) (Review, error)
	Create(ctx context.Context, review Review) error
	Update(ctx context.Context, review Review) error
	List(ctx context.Context, revieweeID, period string) ([]Review, error)
}

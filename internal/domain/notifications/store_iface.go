package notifications

import "context"

type StoreAPI interface {
	CreateBatch(ctx context.Context, batch []Notification) (int, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
}

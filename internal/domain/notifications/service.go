package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// CreateBatch stamps IDs and timestamps onto the inputs and persists them in
// one store round trip. Returns the number written.
func (s *Service) CreateBatch(ctx context.Context, inputs []Input) (int, error) {
	if len(inputs) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	batch := make([]Notification, 0, len(inputs))
	for _, in := range inputs {
		batch = append(batch, Notification{
			ID:          uuid.NewString(),
			RecipientID: in.RecipientID,
			Type:        in.Type,
			Title:       in.Title,
			Body:        in.Body,
			Link:        in.Link,
			CreatedAt:   now,
		})
	}
	return s.Store.CreateBatch(ctx, batch)
}

func (s *Service) ListByRecipient(ctx context.Context, recipientID string) ([]Notification, error) {
	return s.Store.ListByRecipient(ctx, recipientID)
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.Store.MarkRead(ctx, id)
}

package memory

import (
	"context"
	"sort"

	"perfreview/internal/domain/notifications"
)

type NotificationStore struct {
	db *Store
}

func (s *NotificationStore) CreateBatch(_ context.Context, batch []notifications.Notification) (int, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, n := range batch {
		s.db.notifications[n.ID] = n
	}
	return len(batch), nil
}

func (s *NotificationStore) ListByRecipient(_ context.Context, recipientID string) ([]notifications.Notification, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	var out []notifications.Notification
	for _, n := range s.db.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *NotificationStore) MarkRead(_ context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	n, ok := s.db.notifications[id]
	if !ok {
		return nil
	}
	n.Read = true
	s.db.notifications[id] = n
	return nil
}

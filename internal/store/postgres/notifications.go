package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"perfreview/internal/domain/notifications"
	"perfreview/internal/platform/querier"
)

type NotificationStore struct {
	db querier.Querier
}

func (s *NotificationStore) CreateBatch(ctx context.Context, batch []notifications.Notification) (int, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	b := &pgx.Batch{}
	for _, n := range batch {
		b.Queue(`
      INSERT INTO notifications (id, recipient_id, type, title, body, link, read, created_at)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `, n.ID, n.RecipientID, n.Type, n.Title, nullIfEmpty(n.Body), nullIfEmpty(n.Link), n.Read, n.CreatedAt)
	}

	results := s.db.SendBatch(ctx, b)
	defer results.Close()

	created := 0
	for range batch {
		if _, err := results.Exec(); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *NotificationStore) ListByRecipient(ctx context.Context, recipientID string) ([]notifications.Notification, error) {
	rows, err := s.db.Query(ctx, `
    SELECT id, recipient_id, type, title, COALESCE(body, ''), COALESCE(link, ''), read, created_at
    FROM notifications
    WHERE recipient_id = $1
    ORDER BY created_at DESC, id
  `, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []notifications.Notification
	for rows.Next() {
		var n notifications.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Type, &n.Title, &n.Body, &n.Link, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *NotificationStore) MarkRead(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, "UPDATE notifications SET read = true WHERE id = $1", id)
	return err
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"perfreview/internal/domain/peerreview"
	"perfreview/internal/platform/querier"
)

type ReviewStore struct {
	db querier.Querier
}

func (s *ReviewStore) FindByID(ctx context.Context, id string) (peerreview.Review, error) {
	var r peerreview.Review
	if err := s.db.QueryRow(ctx, `
    SELECT id, reviewer_id, reviewee_id, period, collaboration, professionalism, communication, COALESCE(comment, ''), submitted, created_at
    FROM peer_reviews
    WHERE id = $1
  `, id).Scan(&r.ID, &r.ReviewerID, &r.RevieweeID, &r.Period, &r.Collaboration, &r.Professionalism, &r.Communication, &r.Comment, &r.Submitted, &r.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return peerreview.Review{}, peerreview.ErrReviewNotFound
		}
		return peerreview.Review{}, err
	}
	return r, nil
}

func (s *ReviewStore) Create(ctx context.Context, review peerreview.Review) error {
	_, err := s.db.Exec(ctx, `
    INSERT INTO peer_reviews (id, reviewer_id, reviewee_id, period, collaboration, professionalism, communication, comment, submitted, created_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    ON CONFLICT (id) DO NOTHING
  `, review.ID, review.ReviewerID, review.RevieweeID, review.Period,
		review.Collaboration, review.Professionalism, review.Communication,
		nullIfEmpty(review.Comment), review.Submitted, review.CreatedAt)
	return err
}

func (s *ReviewStore) Update(ctx context.Context, review peerreview.Review) error {
	tag, err := s.db.Exec(ctx, `
    UPDATE peer_reviews
    SET collaboration = $1, professionalism = $2, communication = $3, comment = $4, submitted = $5
    WHERE id = $6
  `, review.Collaboration, review.Professionalism, review.Communication,
		nullIfEmpty(review.Comment), review.Submitted, review.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return peerreview.ErrReviewNotFound
	}
	return nil
}

func (s *ReviewStore) List(ctx context.Context, revieweeID, period string) ([]peerreview.Review, error) {
	query := `
    SELECT id, reviewer_id, reviewee_id, period, collaboration, professionalism, communication, COALESCE(comment, ''), submitted, created_at
    FROM peer_reviews
    WHERE 1=1
  `
	var args []any
	if revieweeID != "" {
		args = append(args, revieweeID)
		query += ` AND reviewee_id = $1`
	}
	if period != "" {
		args = append(args, period)
		if len(args) == 1 {
			query += ` AND period = $1`
		} else {
			query += ` AND period = $2`
		}
	}
	query += ` ORDER BY id`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []peerreview.Review
	for rows.Next() {
		var r peerreview.Review
		if err := rows.Scan(&r.ID, &r.ReviewerID, &r.RevieweeID, &r.Period, &r.Collaboration, &r.Professionalism, &r.Communication, &r.Comment, &r.Submitted, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

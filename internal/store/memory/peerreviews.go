package memory

import (
	"context"
	"fmt"
	"sort"

	"perfreview/internal/domain/peerreview"
)

type ReviewStore struct {
	db *Store
}

func (s *ReviewStore) FindByID(_ context.Context, id string) (peerreview.Review, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	review, ok := s.db.reviews[id]
	if !ok {
		return peerreview.Review{}, peerreview.ErrReviewNotFound
	}
	return review, nil
}

func (s *ReviewStore) Create(_ context.Context, review peerreview.Review) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, exists := s.db.reviews[review.ID]; exists {
		return fmt.Errorf("peer review %s already exists", review.ID)
	}
	s.db.reviews[review.ID] = review
	return nil
}

func (s *ReviewStore) Update(_ context.Context, review peerreview.Review) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.reviews[review.ID]; !ok {
		return peerreview.ErrReviewNotFound
	}
	s.db.reviews[review.ID] = review
	return nil
}

func (s *ReviewStore) List(_ context.Context, revieweeID, period string) ([]peerreview.Review, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	var out []peerreview.Review
	for _, review := range s.db.reviews {
		if revieweeID != "" && review.RevieweeID != revieweeID {
			continue
		}
		if period != "" && review.Period != period {
			continue
		}
		out = append(out, review)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

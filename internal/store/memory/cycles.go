package memory

import (
	"context"
	"fmt"
	"sort"

	"perfreview/internal/domain/assessment"
)

type CycleStore struct {
	db *Store
}

func (s *CycleStore) Create(_ context.Context, cycle assessment.Cycle) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, exists := s.db.cycles[cycle.ID]; exists {
		return fmt.Errorf("assessment cycle %s already exists", cycle.ID)
	}
	s.db.cycles[cycle.ID] = cycle
	return nil
}

func (s *CycleStore) FindByID(_ context.Context, id string) (assessment.Cycle, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	cycle, ok := s.db.cycles[id]
	if !ok {
		return assessment.Cycle{}, assessment.ErrCycleNotFound
	}
	return cycle, nil
}

func (s *CycleStore) FindActive(ctx context.Context) ([]assessment.Cycle, error) {
	return s.List(ctx, assessment.StatusActive)
}

func (s *CycleStore) List(_ context.Context, status string) ([]assessment.Cycle, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	var out []assessment.Cycle
	for _, cycle := range s.db.cycles {
		if status != "" && cycle.Status != status {
			continue
		}
		out = append(out, cycle)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *CycleStore) UpdateStatus(_ context.Context, id, status string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	cycle, ok := s.db.cycles[id]
	if !ok {
		return assessment.ErrCycleNotFound
	}
	cycle.Status = status
	s.db.cycles[id] = cycle
	return nil
}

package memory

import (
	"context"
	"sort"
	"time"

	"perfreview/internal/domain/todo"
)

type TodoStore struct {
	db *Store
}

func (s *TodoStore) Create(_ context.Context, item todo.Todo) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.todos[item.ID] = item
	return nil
}

func (s *TodoStore) FindExisting(_ context.Context, employeeID, todoType, cycleID string) (todo.Todo, bool, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for _, item := range s.db.todos {
		if item.EmployeeID == employeeID && item.Type == todoType && item.CycleID == cycleID && item.Status == todo.StatusPending {
			return item, true, nil
		}
	}
	return todo.Todo{}, false, nil
}

func (s *TodoStore) ListByEmployee(_ context.Context, employeeID string) ([]todo.Todo, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	var out []todo.Todo
	for _, item := range s.db.todos {
		if item.EmployeeID == employeeID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *TodoStore) Complete(_ context.Context, id string, at time.Time) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	item, ok := s.db.todos[id]
	if !ok {
		return todo.ErrNotFound
	}
	item.Status = todo.StatusCompleted
	item.CompletedAt = &at
	s.db.todos[id] = item
	return nil
}

func (s *TodoStore) SweepOverdue(_ context.Context, now time.Time) (int, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	count := 0
	for id, item := range s.db.todos {
		if item.Status == todo.StatusPending && !item.DueDate.IsZero() && item.DueDate.Before(now) {
			item.Status = todo.StatusOverdue
			s.db.todos[id] = item
			count++
		}
	}
	return count, nil
}

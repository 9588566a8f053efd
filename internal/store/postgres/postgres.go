// Package postgres persists the review platform's data through pgx. Each
// domain port gets its own view over the shared querier so the adapters can
// be handed out independently.
package postgres

import (
	"perfreview/internal/domain/assessment"
	"perfreview/internal/domain/employee"
	"perfreview/internal/domain/notifications"
	"perfreview/internal/domain/peerreview"
	"perfreview/internal/domain/performance"
	"perfreview/internal/domain/todo"
	"perfreview/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func New(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) Employees() *EmployeeStore         { return &EmployeeStore{db: s.DB} }
func (s *Store) Records() *RecordStore             { return &RecordStore{db: s.DB} }
func (s *Store) Reviews() *ReviewStore             { return &ReviewStore{db: s.DB} }
func (s *Store) Cycles() *CycleStore               { return &CycleStore{db: s.DB} }
func (s *Store) Notifications() *NotificationStore { return &NotificationStore{db: s.DB} }
func (s *Store) Todos() *TodoStore                 { return &TodoStore{db: s.DB} }

var (
	_ employee.StoreAPI      = (*EmployeeStore)(nil)
	_ performance.StoreAPI   = (*RecordStore)(nil)
	_ peerreview.StoreAPI    = (*ReviewStore)(nil)
	_ assessment.StoreAPI    = (*CycleStore)(nil)
	_ notifications.StoreAPI = (*NotificationStore)(nil)
	_ todo.StoreAPI          = (*TodoStore)(nil)
)

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// Package memory is the in-memory store adapter used by tests and by the
// server when no database is configured.
package memory

import (
	"sync"

	"perfreview/internal/domain/assessment"
	"perfreview/internal/domain/employee"
	"perfreview/internal/domain/notifications"
	"perfreview/internal/domain/peerreview"
	"perfreview/internal/domain/performance"
	"perfreview/internal/domain/todo"
)

// Store holds every collection behind one lock. Per-port views hang off it
// so each domain package sees only its own contract.
type Store struct {
	mu sync.RWMutex

	employees     map[string]employee.Employee
	records       map[string]performance.Record
	reviews       map[string]peerreview.Review
	cycles        map[string]assessment.Cycle
	notifications map[string]notifications.Notification
	todos         map[string]todo.Todo
}

func New() *Store {
	return &Store{
		employees:     make(map[string]employee.Employee),
		records:       make(map[string]performance.Record),
		reviews:       make(map[string]peerreview.Review),
		cycles:        make(map[string]assessment.Cycle),
		notifications: make(map[string]notifications.Notification),
		todos:         make(map[string]todo.Todo),
	}
}

func (s *Store) Employees() *EmployeeStore         { return &EmployeeStore{s} }
func (s *Store) Records() *RecordStore             { return &RecordStore{s} }
func (s *Store) Reviews() *ReviewStore             { return &ReviewStore{s} }
func (s *Store) Cycles() *CycleStore               { return &CycleStore{s} }
func (s *Store) Notifications() *NotificationStore { return &NotificationStore{s} }
func (s *Store) Todos() *TodoStore                 { return &TodoStore{s} }

var (
	_ employee.StoreAPI      = (*EmployeeStore)(nil)
	_ performance.StoreAPI   = (*RecordStore)(nil)
	_ peerreview.StoreAPI    = (*ReviewStore)(nil)
	_ assessment.StoreAPI    = (*CycleStore)(nil)
	_ notifications.StoreAPI = (*NotificationStore)(nil)
	_ todo.StoreAPI          = (*TodoStore)(nil)
)

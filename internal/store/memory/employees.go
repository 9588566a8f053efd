package memory

import (
	"context"
	"sort"

	"perfreview/internal/domain/employee"
)

type EmployeeStore struct {
	db *Store
}

// Seed loads roster entries, mainly for tests and dev mode.
func (s *EmployeeStore) Seed(employees ...employee.Employee) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, emp := range employees {
		s.db.employees[emp.ID] = emp
	}
}

func (s *EmployeeStore) FindByID(_ context.Context, id string) (employee.Employee, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	emp, ok := s.db.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrNotFound
	}
	return emp, nil
}

func (s *EmployeeStore) FindByDepartment(_ context.Context, department string) ([]employee.Employee, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	var out []employee.Employee
	for _, emp := range s.db.employees {
		if emp.Department == department {
			out = append(out, emp)
		}
	}
	sortEmployees(out)
	return out, nil
}

func (s *EmployeeStore) ListActive(_ context.Context) ([]employee.Employee, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	var out []employee.Employee
	for _, emp := range s.db.employees {
		if emp.Status == employee.StatusActive {
			out = append(out, emp)
		}
	}
	sortEmployees(out)
	return out, nil
}

// sortEmployees keeps list order deterministic across map iteration.
func sortEmployees(employees []employee.Employee) {
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"perfreview/internal/domain/employee"
	"perfreview/internal/platform/querier"
)

type EmployeeStore struct {
	db querier.Querier
}

func (s *EmployeeStore) FindByID(ctx context.Context, id string) (employee.Employee, error) {
	var e employee.Employee
	if err := s.db.QueryRow(ctx, `
    SELECT id, name, department, role, level, COALESCE(manager_id, ''), status, created_at
    FROM employees
    WHERE id = $1
  `, id).Scan(&e.ID, &e.Name, &e.Department, &e.Role, &e.Level, &e.ManagerID, &e.Status, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (s *EmployeeStore) FindByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	rows, err := s.db.Query(ctx, `
    SELECT id, name, department, role, level, COALESCE(manager_id, ''), status, created_at
    FROM employees
    WHERE department = $1
    ORDER BY id
  `, department)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (s *EmployeeStore) ListActive(ctx context.Context) ([]employee.Employee, error) {
	rows, err := s.db.Query(ctx, `
    SELECT id, name, department, role, level, COALESCE(manager_id, ''), status, created_at
    FROM employees
    WHERE status = $1
    ORDER BY id
  `, employee.StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var out []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Department, &e.Role, &e.Level, &e.ManagerID, &e.Status, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

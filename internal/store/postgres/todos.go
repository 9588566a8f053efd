package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"perfreview/internal/domain/todo"
	"perfreview/internal/platform/querier"
)

type TodoStore struct {
	db querier.Querier
}

func (s *TodoStore) Create(ctx context.Context, item todo.Todo) error {
	_, err := s.db.Exec(ctx, `
    INSERT INTO todos (id, employee_id, type, title, description, due_date, status, link, cycle_id, created_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
  `, item.ID, item.EmployeeID, item.Type, item.Title, nullIfEmpty(item.Description),
		nullIfZeroTime(item.DueDate), item.Status, nullIfEmpty(item.Link), nullIfEmpty(item.CycleID), item.CreatedAt)
	return err
}

func (s *TodoStore) FindExisting(ctx context.Context, employeeID, todoType, cycleID string) (todo.Todo, bool, error) {
	row := s.db.QueryRow(ctx, `
    SELECT id, employee_id, type, title, COALESCE(description, ''), COALESCE(due_date, 'epoch'::timestamptz), status, COALESCE(link, ''), COALESCE(cycle_id, ''), created_at, completed_at
    FROM todos
    WHERE employee_id = $1 AND type = $2 AND cycle_id = $3 AND status = $4
    LIMIT 1
  `, employeeID, todoType, cycleID, todo.StatusPending)
	item, err := scanTodo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return todo.Todo{}, false, nil
	}
	if err != nil {
		return todo.Todo{}, false, err
	}
	return item, true, nil
}

func (s *TodoStore) ListByEmployee(ctx context.Context, employeeID string) ([]todo.Todo, error) {
	rows, err := s.db.Query(ctx, `
    SELECT id, employee_id, type, title, COALESCE(description, ''), COALESCE(due_date, 'epoch'::timestamptz), status, COALESCE(link, ''), COALESCE(cycle_id, ''), created_at, completed_at
    FROM todos
    WHERE employee_id = $1
    ORDER BY id
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []todo.Todo
	for rows.Next() {
		item, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (s *TodoStore) Complete(ctx context.Context, id string, at time.Time) error {
	tag, err := s.db.Exec(ctx, `
    UPDATE todos SET status = $1, completed_at = $2 WHERE id = $3
  `, todo.StatusCompleted, at, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return todo.ErrNotFound
	}
	return nil
}

func (s *TodoStore) SweepOverdue(ctx context.Context, now time.Time) (int, error) {
	tag, err := s.db.Exec(ctx, `
    UPDATE todos SET status = $1 WHERE status = $2 AND due_date IS NOT NULL AND due_date < $3
  `, todo.StatusOverdue, todo.StatusPending, now)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func scanTodo(row pgx.Row) (todo.Todo, error) {
	var t todo.Todo
	var dueDate time.Time
	err := row.Scan(&t.ID, &t.EmployeeID, &t.Type, &t.Title, &t.Description, &dueDate, &t.Status, &t.Link, &t.CycleID, &t.CreatedAt, &t.CompletedAt)
	if err != nil {
		return todo.Todo{}, err
	}
	if dueDate.Unix() != 0 {
		t.DueDate = dueDate
	}
	return t, nil
}

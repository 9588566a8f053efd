package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"perfreview/internal/domain/performance"
	"perfreview/internal/platform/querier"
)

type RecordStore struct {
	db querier.Querier
}

const recordColumns = `
    id, employee_id, COALESCE(assessor_id, ''), period, department, group_type,
    COALESCE(self_summary, ''), COALESCE(next_period_plan, ''),
    task_completion, initiative, project_feedback, quality_improvement,
    total_score, COALESCE(level, ''), COALESCE(manager_comment, ''),
    group_rank, department_rank, cross_dept_rank, company_rank,
    status, created_at, updated_at`

func (s *RecordStore) Create(ctx context.Context, record performance.Record) error {
	_, err := s.db.Exec(ctx, `
    INSERT INTO performance_records (id, employee_id, period, department, group_type, self_summary, next_period_plan, status, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
  `, record.ID, record.EmployeeID, record.Period, record.Department, record.GroupType,
		nullIfEmpty(record.SelfSummary), nullIfEmpty(record.NextPeriodPlan), record.Status,
		record.CreatedAt, record.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return performance.ErrRecordExists
		}
		return err
	}
	return nil
}

func (s *RecordStore) FindByID(ctx context.Context, id string) (performance.Record, error) {
	row := s.db.QueryRow(ctx, `SELECT`+recordColumns+` FROM performance_records WHERE id = $1`, id)
	record, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return performance.Record{}, performance.ErrRecordNotFound
	}
	return record, err
}

func (s *RecordStore) FindByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (performance.Record, error) {
	row := s.db.QueryRow(ctx, `SELECT`+recordColumns+` FROM performance_records WHERE employee_id = $1 AND period = $2`, employeeID, period)
	record, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return performance.Record{}, performance.ErrRecordNotFound
	}
	return record, err
}

func (s *RecordStore) FindByPeriod(ctx context.Context, period string) ([]performance.Record, error) {
	rows, err := s.db.Query(ctx, `SELECT`+recordColumns+` FROM performance_records WHERE period = $1 ORDER BY id`, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []performance.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func (s *RecordStore) UpdateScores(ctx context.Context, record performance.Record) error {
	tag, err := s.db.Exec(ctx, `
    UPDATE performance_records
    SET task_completion = $1, initiative = $2, project_feedback = $3, quality_improvement = $4,
        total_score = $5, level = $6, manager_comment = $7, assessor_id = $8, status = $9, updated_at = $10
    WHERE id = $11
  `, record.TaskCompletion, record.Initiative, record.ProjectFeedback, record.QualityImprovement,
		record.TotalScore, nullIfEmpty(record.Level), nullIfEmpty(record.ManagerComment),
		nullIfEmpty(record.AssessorID), record.Status, record.UpdatedAt, record.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrRecordNotFound
	}
	return nil
}

func (s *RecordStore) ApplyRanks(ctx context.Context, period string, ranks []performance.RankAssignment) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, assignment := range ranks {
		if _, err := tx.Exec(ctx, `
      UPDATE performance_records
      SET group_rank = $1, department_rank = $2, cross_dept_rank = $3, company_rank = $4, updated_at = now()
      WHERE id = $5 AND period = $6
    `, assignment.GroupRank, assignment.DepartmentRank, assignment.CrossDeptRank, assignment.CompanyRank,
			assignment.RecordID, period); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func scanRecord(row pgx.Row) (performance.Record, error) {
	var r performance.Record
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.AssessorID, &r.Period, &r.Department, &r.GroupType,
		&r.SelfSummary, &r.NextPeriodPlan,
		&r.TaskCompletion, &r.Initiative, &r.ProjectFeedback, &r.QualityImprovement,
		&r.TotalScore, &r.Level, &r.ManagerComment,
		&r.GroupRank, &r.DepartmentRank, &r.CrossDeptRank, &r.CompanyRank,
		&r.Status, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"perfreview/internal/domain/assessment"
	"perfreview/internal/platform/querier"
)

type CycleStore struct {
	db querier.Querier
}

const cycleColumns = `
    id, name, type, year, start_date, end_date,
    self_assessment_deadline, manager_review_deadline, hr_review_deadline, appeal_deadline,
    status, reminder_days, auto_submit, exclude_holidays, created_at, updated_at`

func (s *CycleStore) Create(ctx context.Context, cycle assessment.Cycle) error {
	_, err := s.db.Exec(ctx, `
    INSERT INTO assessment_cycles (id, name, type, year, start_date, end_date,
      self_assessment_deadline, manager_review_deadline, hr_review_deadline, appeal_deadline,
      status, reminder_days, auto_submit, exclude_holidays, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
  `, cycle.ID, cycle.Name, cycle.Type, cycle.Year, cycle.StartDate, cycle.EndDate,
		nullIfZeroTime(cycle.SelfAssessmentDeadline), nullIfZeroTime(cycle.ManagerReviewDeadline),
		nullIfZeroTime(cycle.HRReviewDeadline), nullIfZeroTime(cycle.AppealDeadline),
		cycle.Status, cycle.ReminderDays, cycle.AutoSubmit, cycle.ExcludeHolidays,
		cycle.CreatedAt, cycle.UpdatedAt)
	return err
}

func (s *CycleStore) FindByID(ctx context.Context, id string) (assessment.Cycle, error) {
	row := s.db.QueryRow(ctx, `SELECT`+cycleColumns+` FROM assessment_cycles WHERE id = $1`, id)
	cycle, err := scanCycle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return assessment.Cycle{}, assessment.ErrCycleNotFound
	}
	return cycle, err
}

func (s *CycleStore) FindActive(ctx context.Context) ([]assessment.Cycle, error) {
	return s.List(ctx, assessment.StatusActive)
}

func (s *CycleStore) List(ctx context.Context, status string) ([]assessment.Cycle, error) {
	query := `SELECT` + cycleColumns + ` FROM assessment_cycles`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY id`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []assessment.Cycle
	for rows.Next() {
		cycle, err := scanCycle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cycle)
	}
	return out, rows.Err()
}

func (s *CycleStore) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := s.db.Exec(ctx, `
    UPDATE assessment_cycles SET status = $1, updated_at = now() WHERE id = $2
  `, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return assessment.ErrCycleNotFound
	}
	return nil
}

func scanCycle(row pgx.Row) (assessment.Cycle, error) {
	var c assessment.Cycle
	var selfDL, mgrDL, hrDL, appealDL *time.Time
	err := row.Scan(
		&c.ID, &c.Name, &c.Type, &c.Year, &c.StartDate, &c.EndDate,
		&selfDL, &mgrDL, &hrDL, &appealDL,
		&c.Status, &c.ReminderDays, &c.AutoSubmit, &c.ExcludeHolidays, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return assessment.Cycle{}, err
	}
	if selfDL != nil {
		c.SelfAssessmentDeadline = *selfDL
	}
	if mgrDL != nil {
		c.ManagerReviewDeadline = *mgrDL
	}
	if hrDL != nil {
		c.HRReviewDeadline = *hrDL
	}
	if appealDL != nil {
		c.AppealDeadline = *appealDL
	}
	return c, nil
}

func nullIfZeroTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

package performance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"perfreview/internal/domain/employee"
	"perfreview/internal/domain/scoring"
)

type Service struct {
	Records   StoreAPI
	Employees employee.StoreAPI

	mu          sync.Mutex
	periodLocks map[string]*sync.Mutex
}

func NewService(records StoreAPI, employees employee.StoreAPI) *Service {
	return &Service{
		Records:     records,
		Employees:   employees,
		periodLocks: make(map[string]*sync.Mutex),
	}
}

// lockPeriod acquires the mutex for a period, creating it on first use, and
// returns the release func.
func (s *Service) lockPeriod(period string) func() {
	s.mu.Lock()
	lock, ok := s.periodLocks[period]
	if !ok {
		lock = &sync.Mutex{}
		s.periodLocks[period] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// SubmitSummary creates the employee's record for the period in submitted
// state. Department and tier are snapshotted from the roster so ranking
// never has to join back to employees.
func (s *Service) SubmitSummary(ctx context.Context, employeeID, period, selfSummary, nextPeriodPlan string) (Record, error) {
	if _, err := s.Records.FindByEmployeeAndPeriod(ctx, employeeID, period); err == nil {
		return Record{}, ErrRecordExists
	} else if !errors.Is(err, ErrRecordNotFound) {
		return Record{}, err
	}

	emp, err := s.Employees.FindByID(ctx, employeeID)
	if err != nil {
		return Record{}, fmt.Errorf("lookup employee %s: %w", employeeID, err)
	}

	now := time.Now().UTC()
	record := Record{
		ID:             uuid.NewString(),
		EmployeeID:     emp.ID,
		AssessorID:     emp.ManagerID,
		Period:         period,
		Department:     emp.Department,
		GroupType:      employee.GroupFor(emp.Level),
		SelfSummary:    selfSummary,
		NextPeriodPlan: nextPeriodPlan,
		Status:         StatusSubmitted,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Records.Create(ctx, record); err != nil {
		return Record{}, err
	}
	return record, nil
}

type ScoreInput struct {
	TaskCompletion     float64
	Initiative         float64
	ProjectFeedback    float64
	QualityImprovement float64
	ManagerComment     string
	AssessorID         string
}

// SubmitScores stores the manager's four dimension scores on a record,
// derives total and level, marks the record completed, and recomputes the
// period's ranks.
func (s *Service) SubmitScores(ctx context.Context, recordID string, in ScoreInput) (Record, error) {
	record, err := s.Records.FindByID(ctx, recordID)
	if err != nil {
		return Record{}, err
	}

	record.TaskCompletion = in.TaskCompletion
	record.Initiative = in.Initiative
	record.ProjectFeedback = in.ProjectFeedback
	record.QualityImprovement = in.QualityImprovement
	record.TotalScore = scoring.TotalScore(in.TaskCompletion, in.Initiative, in.ProjectFeedback, in.QualityImprovement)
	record.Level = scoring.ScoreToLevel(record.TotalScore)
	record.ManagerComment = in.ManagerComment
	if in.AssessorID != "" {
		record.AssessorID = in.AssessorID
	}
	record.Status = StatusCompleted
	record.UpdatedAt = time.Now().UTC()

	if err := s.Records.UpdateScores(ctx, record); err != nil {
		return Record{}, err
	}
	if err := s.RecomputeRanks(ctx, record.Period); err != nil {
		return Record{}, err
	}

	return s.Records.FindByID(ctx, recordID)
}

func (s *Service) ListByPeriod(ctx context.Context, period string) ([]Record, error) {
	return s.Records.FindByPeriod(ctx, period)
}

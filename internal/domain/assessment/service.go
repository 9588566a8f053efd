package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service covers the HR-facing cycle administration that feeds the
// scheduler.
type Service struct {
	Cycles StoreAPI
	Clock  Clock
}

func NewService(cycles StoreAPI, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock()
	}
	return &Service{Cycles: cycles, Clock: clock}
}

type CreateCycleInput struct {
	Name                   string
	Type                   string
	Year                   int
	StartDate              time.Time
	EndDate                time.Time
	SelfAssessmentDeadline time.Time
	ManagerReviewDeadline  time.Time
	HRReviewDeadline       time.Time
	AppealDeadline         time.Time
	ReminderDays           int
	AutoSubmit             bool
	ExcludeHolidays        bool
}

func (s *Service) Create(ctx context.Context, in CreateCycleInput) (Cycle, error) {
	if in.Name == "" {
		return Cycle{}, fmt.Errorf("cycle name is required")
	}
	if !in.EndDate.After(in.StartDate) {
		return Cycle{}, fmt.Errorf("cycle end date must be after start date")
	}
	switch in.Type {
	case TypeMonthly, TypeQuarterly, TypeAnnual:
	default:
		return Cycle{}, fmt.Errorf("unknown cycle type %q", in.Type)
	}

	now := s.Clock.Now().UTC()
	cycle := Cycle{
		ID:                     uuid.NewString(),
		Name:                   in.Name,
		Type:                   in.Type,
		Year:                   in.Year,
		StartDate:              in.StartDate,
		EndDate:                in.EndDate,
		SelfAssessmentDeadline: in.SelfAssessmentDeadline,
		ManagerReviewDeadline:  in.ManagerReviewDeadline,
		HRReviewDeadline:       in.HRReviewDeadline,
		AppealDeadline:         in.AppealDeadline,
		Status:                 StatusDraft,
		ReminderDays:           in.ReminderDays,
		AutoSubmit:             in.AutoSubmit,
		ExcludeHolidays:        in.ExcludeHolidays,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if cycle.ReminderDays <= 0 {
		cycle.ReminderDays = defaultReminderDays
	}
	if err := s.Cycles.Create(ctx, cycle); err != nil {
		return Cycle{}, err
	}
	return cycle, nil
}

func (s *Service) Activate(ctx context.Context, id string) (Cycle, error) {
	cycle, err := s.Cycles.FindByID(ctx, id)
	if err != nil {
		return Cycle{}, err
	}
	if cycle.Status == StatusClosed {
		return Cycle{}, fmt.Errorf("cycle %s is closed", id)
	}
	if err := s.Cycles.UpdateStatus(ctx, id, StatusActive); err != nil {
		return Cycle{}, err
	}
	cycle.Status = StatusActive
	return cycle, nil
}

func (s *Service) Close(ctx context.Context, id string) error {
	if _, err := s.Cycles.FindByID(ctx, id); err != nil {
		return err
	}
	return s.Cycles.UpdateStatus(ctx, id, StatusClosed)
}

func (s *Service) List(ctx context.Context, status string) ([]Cycle, error) {
	return s.Cycles.List(ctx, status)
}

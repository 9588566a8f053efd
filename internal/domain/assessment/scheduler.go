package assessment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"perfreview/internal/domain/employee"
	"perfreview/internal/domain/notifications"
	"perfreview/internal/domain/todo"
)

// Scheduler evaluates active cycle deadlines against today and emits
// notifications and todos. It keeps no state between ticks; every decision
// is re-derived from fresh reads, so a missed or repeated tick is harmless.
type Scheduler struct {
	Cycles    StoreAPI
	Employees employee.StoreAPI
	Notifier  *notifications.Service
	Todos     todo.StoreAPI
	Clock     Clock
}

func NewScheduler(cycles StoreAPI, employees employee.StoreAPI, notifier *notifications.Service, todos todo.StoreAPI, clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{Cycles: cycles, Employees: employees, Notifier: notifier, Todos: todos, Clock: clock}
}

// CheckDeadlines runs one pass over every active cycle. A failure in one
// cycle is logged and does not stop the others; the next tick re-evaluates
// the same state, so there are no retries here.
func (s *Scheduler) CheckDeadlines(ctx context.Context) error {
	cycles, err := s.Cycles.FindActive(ctx)
	if err != nil {
		return fmt.Errorf("load active cycles: %w", err)
	}

	today := s.Clock.Now()
	for _, cycle := range cycles {
		if err := s.checkCycle(ctx, cycle, today); err != nil {
			slog.Warn("deadline check failed for cycle", "cycleId", cycle.ID, "err", err)
		}
	}
	return nil
}

func (s *Scheduler) checkCycle(ctx context.Context, cycle Cycle, today time.Time) error {
	lead := cycle.reminderLeadDays()
	for _, dl := range cycle.Deadlines() {
		daysLeft := daysUntil(today, dl.Date)
		if cycle.ExcludeHolidays {
			daysLeft = workdaysUntil(today, dl.Date)
		}

		switch {
		case daysLeft == lead:
			if err := s.sendReminder(ctx, cycle, dl, daysLeft, notifications.TypeReminder); err != nil {
				return err
			}
		case daysLeft == 1:
			if err := s.sendReminder(ctx, cycle, dl, daysLeft, notifications.TypeDeadline); err != nil {
				return err
			}
		case daysLeft < 0 && cycle.AutoSubmit:
			if err := s.escalateOverdue(ctx, cycle, dl); err != nil {
				return err
			}
		}
	}
	return nil
}

// sendReminder notifies the deadline's audience and makes sure each member
// has a todo for (employee, kind, cycle). Notifications repeat on matching
// ticks; todos do not.
func (s *Scheduler) sendReminder(ctx context.Context, cycle Cycle, dl Deadline, daysLeft int, notificationType string) error {
	audience, err := s.audienceFor(ctx, dl.Kind)
	if err != nil {
		return err
	}
	if len(audience) == 0 {
		return nil
	}

	title := fmt.Sprintf("Reminder: %s due in %d days - %s", dl.Label, daysLeft, cycle.Name)
	if daysLeft == 1 {
		title = fmt.Sprintf("Final reminder: %s due tomorrow - %s", dl.Label, cycle.Name)
	}
	body := fmt.Sprintf("The %s for cycle %q is due on %s. Please complete it before the deadline.",
		dl.Label, cycle.Name, dl.Date.Format("2006-01-02"))

	inputs := make([]notifications.Input, 0, len(audience))
	for _, emp := range audience {
		inputs = append(inputs, notifications.Input{
			RecipientID: emp.ID,
			Type:        notificationType,
			Title:       title,
			Body:        body,
			Link:        dl.Link,
		})
	}
	sent, err := s.Notifier.CreateBatch(ctx, inputs)
	if err != nil {
		return fmt.Errorf("send %s notifications: %w", dl.Kind, err)
	}
	slog.Info("deadline reminders sent", "cycleId", cycle.ID, "kind", dl.Kind, "count", sent)

	for _, emp := range audience {
		if err := s.ensureTodo(ctx, cycle, dl, emp); err != nil {
			slog.Warn("todo creation failed", "cycleId", cycle.ID, "employeeId", emp.ID, "kind", dl.Kind, "err", err)
		}
	}
	return nil
}

func (s *Scheduler) ensureTodo(ctx context.Context, cycle Cycle, dl Deadline, emp employee.Employee) error {
	if _, exists, err := s.Todos.FindExisting(ctx, emp.ID, dl.Kind, cycle.ID); err != nil {
		return err
	} else if exists {
		return nil
	}
	return s.Todos.Create(ctx, todo.Todo{
		ID:          uuid.NewString(),
		EmployeeID:  emp.ID,
		Type:        dl.Kind,
		Title:       fmt.Sprintf("Complete %s - %s", dl.Label, cycle.Name),
		Description: fmt.Sprintf("Finish the %s before the deadline.", dl.Label),
		DueDate:     dl.Date,
		Status:      todo.StatusPending,
		Link:        dl.Link,
		CycleID:     cycle.ID,
		CreatedAt:   s.Clock.Now().UTC(),
	})
}

// escalateOverdue notifies each affected employee and, when known, their
// manager. Despite the cycle flag's name nothing is submitted on anyone's
// behalf.
func (s *Scheduler) escalateOverdue(ctx context.Context, cycle Cycle, dl Deadline) error {
	audience, err := s.audienceFor(ctx, dl.Kind)
	if err != nil {
		return err
	}

	var inputs []notifications.Input
	for _, emp := range audience {
		inputs = append(inputs, notifications.Input{
			RecipientID: emp.ID,
			Type:        notifications.TypeEscalation,
			Title:       fmt.Sprintf("Overdue: %s past its deadline - %s", dl.Label, cycle.Name),
			Body:        fmt.Sprintf("Your %s is past its deadline. Please complete it as soon as possible or contact your manager.", dl.Label),
			Link:        dl.Link,
		})
		if emp.ManagerID != "" {
			inputs = append(inputs, notifications.Input{
				RecipientID: emp.ManagerID,
				Type:        notifications.TypeEscalation,
				Title:       fmt.Sprintf("Report overdue: %s has not completed the %s", emp.Name, dl.Label),
				Body:        fmt.Sprintf("%s's %s for cycle %q is past its deadline.", emp.Name, dl.Label, cycle.Name),
			})
		}
	}

	sent, err := s.Notifier.CreateBatch(ctx, inputs)
	if err != nil {
		return fmt.Errorf("send overdue escalations: %w", err)
	}
	if sent > 0 {
		slog.Info("overdue escalations sent", "cycleId", cycle.ID, "kind", dl.Kind, "count", sent)
	}
	return nil
}

// audienceFor resolves a deadline kind to the active employees it targets:
// self-assessments go to everyone, manager reviews to managers and general
// managers, HR and appeal reviews to HR/admin roles.
func (s *Scheduler) audienceFor(ctx context.Context, kind string) ([]employee.Employee, error) {
	active, err := s.Employees.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active employees: %w", err)
	}
	switch kind {
	case DeadlineSelfAssessment:
		return active, nil
	case DeadlineManagerReview:
		return filterRoles(active, employee.RoleManager, employee.RoleGM), nil
	case DeadlineHRReview, DeadlineAppealReview:
		return filterRoles(active, employee.RoleHR, employee.RoleAdmin), nil
	default:
		return active, nil
	}
}

func filterRoles(employees []employee.Employee, roles ...string) []employee.Employee {
	var out []employee.Employee
	for _, emp := range employees {
		for _, role := range roles {
			if emp.Role == role {
				out = append(out, emp)
				break
			}
		}
	}
	return out
}

// SweepOverdueTodos flips pending todos past their due date to overdue.
// Already-overdue and completed items are untouched, so the sweep can run as
// often as the timer likes.
func (s *Scheduler) SweepOverdueTodos(ctx context.Context) (int, error) {
	count, err := s.Todos.SweepOverdue(ctx, s.Clock.Now())
	if err != nil {
		return 0, fmt.Errorf("sweep overdue todos: %w", err)
	}
	if count > 0 {
		slog.Info("todos marked overdue", "count", count)
	}
	return count, nil
}

package assessment_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"perfreview/internal/domain/assessment"
	"perfreview/internal/domain/employee"
	"perfreview/internal/domain/notifications"
	"perfreview/internal/domain/todo"
	"perfreview/internal/store/memory"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func seedRoster(mem *memory.Store) {
	mem.Employees().Seed(
		employee.Employee{ID: "e1", Name: "Ada", Department: "engineering", Role: employee.RoleEmployee, Level: employee.LevelSenior, ManagerID: "m1", Status: employee.StatusActive},
		employee.Employee{ID: "e2", Name: "Lin", Department: "engineering", Role: employee.RoleEmployee, Level: employee.LevelJunior, ManagerID: "m1", Status: employee.StatusActive},
		employee.Employee{ID: "m1", Name: "Grace", Department: "engineering", Role: employee.RoleManager, Level: employee.LevelSenior, Status: employee.StatusActive},
		employee.Employee{ID: "h1", Name: "Joan", Department: "people", Role: employee.RoleHR, Level: employee.LevelSenior, Status: employee.StatusActive},
		employee.Employee{ID: "x1", Name: "Old", Department: "engineering", Role: employee.RoleEmployee, Level: employee.LevelSenior, Status: employee.StatusInactive},
	)
}

func newScheduler(mem *memory.Store, now time.Time) *assessment.Scheduler {
	return assessment.NewScheduler(
		mem.Cycles(),
		mem.Employees(),
		notifications.NewService(mem.Notifications()),
		mem.Todos(),
		fixedClock{now: now},
	)
}

func activeCycle(t *testing.T, mem *memory.Store, cycle assessment.Cycle) assessment.Cycle {
	t.Helper()
	if cycle.ID == "" {
		cycle.ID = uuid.NewString()
	}
	cycle.Status = assessment.StatusActive
	if cycle.ReminderDays == 0 {
		cycle.ReminderDays = 3
	}
	if err := mem.Cycles().Create(context.Background(), cycle); err != nil {
		t.Fatalf("seed cycle: %v", err)
	}
	return cycle
}

func TestCheckDeadlinesSendsReminderAndTodos(t *testing.T) {
	mem := memory.New()
	seedRoster(mem)
	now := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	cycle := activeCycle(t, mem, assessment.Cycle{
		Name:                   "August 2026",
		Type:                   assessment.TypeMonthly,
		StartDate:              time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:                time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		SelfAssessmentDeadline: time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC),
	})
	scheduler := newScheduler(mem, now)
	ctx := context.Background()

	if err := scheduler.CheckDeadlines(ctx); err != nil {
		t.Fatalf("check deadlines: %v", err)
	}

	// Self-assessment reminders go to every active employee, inactive ones
	// excluded.
	for _, recipient := range []string{"e1", "e2", "m1", "h1"} {
		items, err := notifications.NewService(mem.Notifications()).ListByRecipient(ctx, recipient)
		if err != nil {
			t.Fatalf("list notifications for %s: %v", recipient, err)
		}
		if len(items) != 1 {
			t.Fatalf("recipient %s has %d notifications, want 1", recipient, len(items))
		}
		if items[0].Type != notifications.TypeReminder {
			t.Fatalf("recipient %s got type %s, want reminder", recipient, items[0].Type)
		}
		if items[0].Link != "/monthly-report" {
			t.Fatalf("recipient %s got link %s", recipient, items[0].Link)
		}
	}
	if items, _ := notifications.NewService(mem.Notifications()).ListByRecipient(ctx, "x1"); len(items) != 0 {
		t.Fatalf("inactive employee received %d notifications", len(items))
	}

	todos, err := mem.Todos().ListByEmployee(ctx, "e1")
	if err != nil {
		t.Fatalf("list todos: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(todos))
	}
	if todos[0].Type != assessment.DeadlineSelfAssessment || todos[0].CycleID != cycle.ID {
		t.Fatalf("unexpected todo: %+v", todos[0])
	}
	if todos[0].Status != todo.StatusPending {
		t.Fatalf("expected pending todo, got %s", todos[0].Status)
	}

	// A second tick on the same day repeats the notification but not the
	// todo.
	if err := scheduler.CheckDeadlines(ctx); err != nil {
		t.Fatalf("second check: %v", err)
	}
	items, _ := notifications.NewService(mem.Notifications()).ListByRecipient(ctx, "e1")
	if len(items) != 2 {
		t.Fatalf("expected repeated notification, got %d", len(items))
	}
	todos, _ = mem.Todos().ListByEmployee(ctx, "e1")
	if len(todos) != 1 {
		t.Fatalf("todo duplicated on second tick: %d", len(todos))
	}
}

func TestCheckDeadlinesManagerReviewAudience(t *testing.T) {
	mem := memory.New()
	seedRoster(mem)
	now := time.Date(2026, 8, 12, 9, 0, 0, 0, time.UTC)
	activeCycle(t, mem, assessment.Cycle{
		Name:                  "August 2026",
		Type:                  assessment.TypeMonthly,
		StartDate:             time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:               time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		ManagerReviewDeadline: time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC),
	})
	scheduler := newScheduler(mem, now)
	ctx := context.Background()

	if err := scheduler.CheckDeadlines(ctx); err != nil {
		t.Fatalf("check deadlines: %v", err)
	}

	notifier := notifications.NewService(mem.Notifications())
	items, _ := notifier.ListByRecipient(ctx, "m1")
	if len(items) != 1 {
		t.Fatalf("manager has %d notifications, want 1", len(items))
	}
	if items[0].Type != notifications.TypeDeadline {
		t.Fatalf("expected final reminder type at one day left, got %s", items[0].Type)
	}
	for _, recipient := range []string{"e1", "e2", "h1"} {
		if items, _ := notifier.ListByRecipient(ctx, recipient); len(items) != 0 {
			t.Fatalf("recipient %s should not be in manager review audience", recipient)
		}
	}
}

func TestCheckDeadlinesOverdueEscalation(t *testing.T) {
	mem := memory.New()
	seedRoster(mem)
	now := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)
	activeCycle(t, mem, assessment.Cycle{
		Name:                   "August 2026",
		Type:                   assessment.TypeMonthly,
		StartDate:              time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:                time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		SelfAssessmentDeadline: time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC),
		AutoSubmit:             true,
	})
	scheduler := newScheduler(mem, now)
	ctx := context.Background()

	if err := scheduler.CheckDeadlines(ctx); err != nil {
		t.Fatalf("check deadlines: %v", err)
	}

	notifier := notifications.NewService(mem.Notifications())
	items, _ := notifier.ListByRecipient(ctx, "e1")
	if len(items) != 1 {
		t.Fatalf("employee has %d escalations, want 1", len(items))
	}
	if items[0].Type != notifications.TypeEscalation {
		t.Fatalf("expected escalation type, got %s", items[0].Type)
	}

	// The manager hears about each report without a manager id of their own,
	// plus their own overdue self-assessment.
	managerItems, _ := notifier.ListByRecipient(ctx, "m1")
	escalations := 0
	for _, item := range managerItems {
		if item.Type == notifications.TypeEscalation {
			escalations++
		}
	}
	if escalations != 3 {
		t.Fatalf("manager escalations = %d, want 3 (own + two reports)", escalations)
	}
}

func TestCheckDeadlinesOverdueWithoutAutoSubmit(t *testing.T) {
	mem := memory.New()
	seedRoster(mem)
	now := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)
	activeCycle(t, mem, assessment.Cycle{
		Name:                   "August 2026",
		Type:                   assessment.TypeMonthly,
		StartDate:              time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:                time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		SelfAssessmentDeadline: time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC),
	})
	scheduler := newScheduler(mem, now)

	if err := scheduler.CheckDeadlines(context.Background()); err != nil {
		t.Fatalf("check deadlines: %v", err)
	}
	if items, _ := notifications.NewService(mem.Notifications()).ListByRecipient(context.Background(), "e1"); len(items) != 0 {
		t.Fatalf("expected silence without autoSubmit, got %d notifications", len(items))
	}
}

func TestCheckDeadlinesWorkdayCounting(t *testing.T) {
	mem := memory.New()
	seedRoster(mem)
	// Friday 2026-08-07 with a deadline the following Wednesday: 3 workdays
	// away, 5 calendar days. Only the workday-counting cycle fires the
	// three-day reminder.
	now := time.Date(2026, 8, 7, 9, 0, 0, 0, time.UTC)
	activeCycle(t, mem, assessment.Cycle{
		Name:                   "workday cycle",
		Type:                   assessment.TypeMonthly,
		StartDate:              time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:                time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		SelfAssessmentDeadline: time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
		ExcludeHolidays:        true,
	})
	scheduler := newScheduler(mem, now)

	if err := scheduler.CheckDeadlines(context.Background()); err != nil {
		t.Fatalf("check deadlines: %v", err)
	}
	items, _ := notifications.NewService(mem.Notifications()).ListByRecipient(context.Background(), "e1")
	if len(items) != 1 {
		t.Fatalf("expected workday reminder, got %d notifications", len(items))
	}
}

func TestSweepOverdueTodos(t *testing.T) {
	mem := memory.New()
	seedRoster(mem)
	now := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)
	scheduler := newScheduler(mem, now)
	ctx := context.Background()

	seedTodo := func(id string, due time.Time, status string) {
		if err := mem.Todos().Create(ctx, todo.Todo{
			ID:         id,
			EmployeeID: "e1",
			Type:       assessment.DeadlineSelfAssessment,
			Title:      "Complete self-assessment",
			DueDate:    due,
			Status:     status,
			CycleID:    "c1",
			CreatedAt:  now,
		}); err != nil {
			t.Fatalf("seed todo %s: %v", id, err)
		}
	}
	seedTodo("t1", time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC), todo.StatusPending)
	seedTodo("t2", time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), todo.StatusPending)
	seedTodo("t3", time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), todo.StatusCompleted)

	swept, err := scheduler.SweepOverdueTodos(ctx)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if swept != 1 {
		t.Fatalf("swept = %d, want 1", swept)
	}

	items, _ := mem.Todos().ListByEmployee(ctx, "e1")
	status := map[string]string{}
	for _, item := range items {
		status[item.ID] = item.Status
	}
	if status["t1"] != todo.StatusOverdue {
		t.Fatalf("t1 = %s, want overdue", status["t1"])
	}
	if status["t2"] != todo.StatusPending {
		t.Fatalf("t2 = %s, want pending", status["t2"])
	}
	if status["t3"] != todo.StatusCompleted {
		t.Fatalf("t3 = %s, want completed", status["t3"])
	}

	// Re-running moves nothing new.
	swept, err = scheduler.SweepOverdueTodos(ctx)
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if swept != 0 {
		t.Fatalf("second sweep = %d, want 0", swept)
	}
}

package performance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"perfreview/internal/domain/employee"
	"perfreview/internal/domain/performance"
	"perfreview/internal/store/memory"
)

func seedRecord(t *testing.T, records performance.StoreAPI, id, employeeID, department, groupType, status string, score float64) {
	t.Helper()
	now := time.Now().UTC()
	err := records.Create(context.Background(), performance.Record{
		ID:         id,
		EmployeeID: employeeID,
		Period:     "2026-08",
		Department: department,
		GroupType:  groupType,
		TotalScore: score,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("seed record %s: %v", id, err)
	}
}

func TestRecomputeRanksPartitions(t *testing.T) {
	mem := memory.New()
	service := performance.NewService(mem.Records(), mem.Employees())
	ctx := context.Background()

	seedRecord(t, mem.Records(), "r1", "e1", "engineering", employee.GroupHigh, performance.StatusCompleted, 1.3)
	seedRecord(t, mem.Records(), "r2", "e2", "engineering", employee.GroupHigh, performance.StatusCompleted, 1.1)
	seedRecord(t, mem.Records(), "r3", "e3", "engineering", employee.GroupLow, performance.StatusCompleted, 1.2)
	seedRecord(t, mem.Records(), "r4", "e4", "sales", employee.GroupHigh, performance.StatusCompleted, 0.9)
	seedRecord(t, mem.Records(), "r5", "e5", "sales", employee.GroupLow, performance.StatusCompleted, 1.4)
	// Draft and zero-score records must not participate or receive ranks.
	seedRecord(t, mem.Records(), "r6", "e6", "engineering", employee.GroupHigh, performance.StatusDraft, 1.5)
	seedRecord(t, mem.Records(), "r7", "e7", "engineering", employee.GroupHigh, performance.StatusCompleted, 0)

	if err := service.RecomputeRanks(ctx, "2026-08"); err != nil {
		t.Fatalf("recompute ranks: %v", err)
	}

	want := map[string][4]int{
		// groupRank, departmentRank, crossDeptRank, companyRank
		"r1": {1, 1, 1, 2},
		"r2": {2, 3, 2, 4},
		"r3": {1, 2, 2, 3},
		"r4": {1, 2, 3, 5},
		"r5": {1, 1, 1, 1},
		"r6": {0, 0, 0, 0},
		"r7": {0, 0, 0, 0},
	}
	for id, expected := range want {
		rec, err := mem.Records().FindByID(ctx, id)
		if err != nil {
			t.Fatalf("find %s: %v", id, err)
		}
		got := [4]int{rec.GroupRank, rec.DepartmentRank, rec.CrossDeptRank, rec.CompanyRank}
		if got != expected {
			t.Fatalf("record %s ranks = %v, want %v", id, got, expected)
		}
	}
}

func TestRecomputeRanksEmptyPeriod(t *testing.T) {
	mem := memory.New()
	service := performance.NewService(mem.Records(), mem.Employees())

	if err := service.RecomputeRanks(context.Background(), "2026-01"); err != nil {
		t.Fatalf("recompute on empty period: %v", err)
	}
}

func TestSubmitSummaryAndScores(t *testing.T) {
	mem := memory.New()
	mem.Employees().Seed(
		employee.Employee{ID: "e1", Name: "Ada", Department: "engineering", Role: employee.RoleEmployee, Level: employee.LevelSenior, ManagerID: "m1", Status: employee.StatusActive},
		employee.Employee{ID: "m1", Name: "Grace", Department: "engineering", Role: employee.RoleManager, Level: employee.LevelSenior, Status: employee.StatusActive},
	)
	service := performance.NewService(mem.Records(), mem.Employees())
	ctx := context.Background()

	record, err := service.SubmitSummary(ctx, "e1", "2026-08", "shipped the importer", "harden the pipeline")
	if err != nil {
		t.Fatalf("submit summary: %v", err)
	}
	if record.Status != performance.StatusSubmitted {
		t.Fatalf("expected submitted status, got %s", record.Status)
	}
	if record.Department != "engineering" || record.GroupType != employee.GroupHigh {
		t.Fatalf("expected snapshot of department and tier, got %s/%s", record.Department, record.GroupType)
	}
	if record.AssessorID != "m1" {
		t.Fatalf("expected manager as default assessor, got %q", record.AssessorID)
	}

	if _, err := service.SubmitSummary(ctx, "e1", "2026-08", "again", ""); !errors.Is(err, performance.ErrRecordExists) {
		t.Fatalf("expected ErrRecordExists on duplicate, got %v", err)
	}

	scored, err := service.SubmitScores(ctx, record.ID, performance.ScoreInput{
		TaskCompletion:     1.2,
		Initiative:         1.2,
		ProjectFeedback:    1.2,
		QualityImprovement: 1.2,
		ManagerComment:     "solid period",
	})
	if err != nil {
		t.Fatalf("submit scores: %v", err)
	}
	if scored.TotalScore != 1.2 {
		t.Fatalf("expected total 1.2, got %v", scored.TotalScore)
	}
	if scored.Level != "L4" {
		t.Fatalf("expected level L4, got %s", scored.Level)
	}
	if scored.Status != performance.StatusCompleted {
		t.Fatalf("expected completed status, got %s", scored.Status)
	}
	if scored.CompanyRank != 1 {
		t.Fatalf("expected company rank 1 for sole record, got %d", scored.CompanyRank)
	}
}

func TestSubmitSummaryUnknownEmployee(t *testing.T) {
	mem := memory.New()
	service := performance.NewService(mem.Records(), mem.Employees())

	if _, err := service.SubmitSummary(context.Background(), "ghost", "2026-08", "", ""); !errors.Is(err, employee.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

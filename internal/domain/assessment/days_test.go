package assessment

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntil(t *testing.T) {
	cases := []struct {
		name     string
		today    time.Time
		deadline time.Time
		want     int
	}{
		{"same day", date(2026, 8, 10), date(2026, 8, 10), 0},
		{"tomorrow", date(2026, 8, 10), date(2026, 8, 11), 1},
		{"three days", date(2026, 8, 10), date(2026, 8, 13), 3},
		{"yesterday", date(2026, 8, 10), date(2026, 8, 9), -1},
		{"clock time ignored", time.Date(2026, 8, 10, 23, 59, 0, 0, time.UTC), time.Date(2026, 8, 11, 0, 1, 0, 0, time.UTC), 1},
	}
	for _, tc := range cases {
		if got := daysUntil(tc.today, tc.deadline); got != tc.want {
			t.Fatalf("%s: daysUntil = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestWorkdaysUntilSkipsWeekends(t *testing.T) {
	// 2026-08-07 is a Friday; the following Monday is one workday away even
	// though three calendar days pass.
	friday := date(2026, 8, 7)
	monday := date(2026, 8, 10)
	if got := workdaysUntil(friday, monday); got != 1 {
		t.Fatalf("friday to monday = %d workdays, want 1", got)
	}
	if got := daysUntil(friday, monday); got != 3 {
		t.Fatalf("friday to monday = %d calendar days, want 3", got)
	}

	// A full week ahead spans five workdays.
	if got := workdaysUntil(friday, date(2026, 8, 14)); got != 5 {
		t.Fatalf("one week = %d workdays, want 5", got)
	}
}

func TestWorkdaysUntilPastDeadline(t *testing.T) {
	if got := workdaysUntil(date(2026, 8, 10), date(2026, 8, 8)); got != -2 {
		t.Fatalf("past deadline = %d, want -2", got)
	}
}

package assessment

import "time"

const (
	StatusDraft  = "draft"
	StatusActive = "active"
	StatusClosed = "closed"

	TypeMonthly   = "monthly"
	TypeQuarterly = "quarterly"
	TypeAnnual    = "annual"

	DeadlineSelfAssessment = "self_assessment"
	DeadlineManagerReview  = "manager_review"
	DeadlineHRReview       = "hr_review"
	DeadlineAppealReview   = "appeal_review"

	defaultReminderDays = 3
)

// Cycle defines the deadlines and flags governing one review workflow.
// Created as draft by HR, activated explicitly, and read by the scheduler
// while active.
type Cycle struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Year      int       `json:"year"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	SelfAssessmentDeadline time.Time `json:"selfAssessmentDeadline,omitzero"`
	ManagerReviewDeadline  time.Time `json:"managerReviewDeadline,omitzero"`
	HRReviewDeadline       time.Time `json:"hrReviewDeadline,omitzero"`
	AppealDeadline         time.Time `json:"appealDeadline,omitzero"`

	Status       string `json:"status"`
	ReminderDays int    `json:"reminderDays"`
	// AutoSubmit gates overdue escalations only; no submission is ever
	// performed on the employee's behalf.
	AutoSubmit      bool `json:"autoSubmit"`
	ExcludeHolidays bool `json:"excludeHolidays"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Deadline is one dated checkpoint within a cycle.
type Deadline struct {
	Kind  string
	Label string
	Date  time.Time
	Link  string
}

// Deadlines lists the cycle's configured checkpoints; unset dates are
// omitted.
func (c Cycle) Deadlines() []Deadline {
	all := []Deadline{
		{Kind: DeadlineSelfAssessment, Label: "self-assessment", Date: c.SelfAssessmentDeadline, Link: "/monthly-report"},
		{Kind: DeadlineManagerReview, Label: "manager review", Date: c.ManagerReviewDeadline, Link: "/performance/review"},
		{Kind: DeadlineHRReview, Label: "HR review", Date: c.HRReviewDeadline, Link: "/performance/review"},
		{Kind: DeadlineAppealReview, Label: "appeal review", Date: c.AppealDeadline, Link: "/appeals"},
	}
	out := all[:0]
	for _, dl := range all {
		if !dl.Date.IsZero() {
			out = append(out, dl)
		}
	}
	return out
}

func (c Cycle) reminderLeadDays() int {
	if c.ReminderDays > 0 {
		return c.ReminderDays
	}
	return defaultReminderDays
}

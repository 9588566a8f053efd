package todo

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusOverdue   = "overdue"
)

// Todo is a per-employee actionable item tied to a deadline. CycleID points
// back at the assessment cycle that spawned it; (EmployeeID, Type, CycleID)
// is the dedupe key for scheduler-created todos.
type Todo struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employeeId"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     time.Time  `json:"dueDate"`
	Status      string     `json:"status"`
	Link        string     `json:"link,omitempty"`
	CycleID     string     `json:"cycleId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

package employee

import "time"

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleGM       = "gm"
	RoleHR       = "hr"
	RoleAdmin    = "admin"

	LevelSenior       = "senior"
	LevelIntermediate = "intermediate"
	LevelJunior       = "junior"
	LevelAssistant    = "assistant"

	GroupHigh = "high"
	GroupLow  = "low"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	Level      string    `json:"level"`
	ManagerID  string    `json:"managerId,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// GroupFor maps a seniority level to the coarse ranking tier. Senior and
// intermediate engineers compete in the high group, everyone else in the low
// group.
func GroupFor(level string) string {
	if level == LevelSenior || level == LevelIntermediate {
		return GroupHigh
	}
	return GroupLow
}

package notifications

const (
	TypeReminder   = "reminder"
	TypeDeadline   = "deadline"
	TypeEscalation = "escalation"
	TypeSystem     = "system"
)

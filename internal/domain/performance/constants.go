package performance

const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusScored    = "scored"
	StatusCompleted = "completed"
)

package notifications

import "time"

type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipientId"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Link        string    `json:"link,omitempty"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Input is a notification before the service stamps identity and creation
// time onto it.
type Input struct {
	RecipientID string
	Type        string
	Title       string
	Body        string
	Link        string
}

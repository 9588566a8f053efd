package peerreview

import (
	"fmt"
	"time"
)

// Review is one reviewer's 360-degree assessment of a colleague for a
// period. The ID is the deterministic composite of the three identity
// fields, which is what makes re-allocation a no-op instead of a duplicate.
type Review struct {
	ID         string    `json:"id"`
	ReviewerID string    `json:"reviewerId"`
	RevieweeID string    `json:"revieweeId"`
	Period     string    `json:"period"`

	Collaboration   float64 `json:"collaboration"`
	Professionalism float64 `json:"professionalism"`
	Communication   float64 `json:"communication"`
	Comment         string  `json:"comment,omitempty"`

	Submitted bool      `json:"submitted"`
	CreatedAt time.Time `json:"createdAt"`
}

// CompositeID builds the natural key for a (reviewer, reviewee, period)
// assignment.
func CompositeID(reviewerID, revieweeID, period string) string {
	return fmt.Sprintf("peer-%s-%s-%s", reviewerID, revieweeID, period)
}

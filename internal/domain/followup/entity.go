// internal/domain/followup/entity.go
package followup

import "time"

// ParentType values for follow-ups. Follow-ups hang off a lead or a deal,
// never both.
const (
	ParentLead = "lead"
	ParentDeal = "deal"
)

type FollowUp struct {
	ID         int64     `json:"id"`
	ParentType string    `json:"parent_type"`
	ParentID   int64     `json:"parent_id"`
	DueAt      time.Time `json:"due_at"`
	Comment    string    `json:"comment,omitempty"`
	Done       bool      `json:"done"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// internal/domain/note/entity.go
package note

import "time"

// Parent resources notes can attach to.
const (
	ParentLead      = "lead"
	ParentDeal      = "deal"
	ParentContract  = "contract"
	ParentInterview = "interview"
)

type Note struct {
	ID         int64     `json:"id"`
	ParentType string    `json:"parent_type"`
	ParentID   int64     `json:"parent_id"`
	Body       string    `json:"body"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

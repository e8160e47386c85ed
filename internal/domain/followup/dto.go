// internal/domain/followup/dto.go
package followup

import "time"

type CreateFollowUpRequest struct {
	DueAt   time.Time `json:"due_at" binding:"required"`
	Comment string    `json:"comment" binding:"max=1000"`
}

type UpdateFollowUpRequest struct {
	DueAt   *time.Time `json:"due_at"`
	Comment *string    `json:"comment" binding:"omitempty,max=1000"`
	Done    *bool      `json:"done"`
}

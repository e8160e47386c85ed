// internal/domain/interview/dto.go
package interview

import "time"

type CreateInterviewRequest struct {
	CandidateName   string    `json:"candidate_name" binding:"required,max=255"`
	CandidateEmail  string    `json:"candidate_email" binding:"omitempty,email,max=255"`
	Position        string    `json:"position" binding:"required,max=255"`
	Stage           string    `json:"stage" binding:"omitempty,oneof=screening technical final offer"`
	Interviewer     string    `json:"interviewer" binding:"max=255"`
	Location        string    `json:"location" binding:"max=500"`
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"omitempty,min=5,max=480"`
}

type UpdateInterviewRequest struct {
	CandidateName   *string    `json:"candidate_name" binding:"omitempty,max=255"`
	CandidateEmail  *string    `json:"candidate_email" binding:"omitempty,email,max=255"`
	Position        *string    `json:"position" binding:"omitempty,max=255"`
	Stage           *string    `json:"stage" binding:"omitempty,oneof=screening technical final offer"`
	Interviewer     *string    `json:"interviewer" binding:"omitempty,max=255"`
	Location        *string    `json:"location" binding:"omitempty,max=500"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,min=5,max=480"`
	Outcome         *string    `json:"outcome" binding:"omitempty,oneof=pending passed failed no_show"`
}

// CalendarFilters selects interviews for one calendar view window.
type CalendarFilters struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

type InterviewListFilters struct {
	Stage     string `form:"stage" binding:"omitempty,oneof=screening technical final offer"`
	Search    string `form:"search"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

type InterviewListResponse struct {
	Interviews []Interview `json:"interviews"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

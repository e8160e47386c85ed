// internal/domain/interview/entity.go
package interview

import "time"

type Interview struct {
	ID             int64  `json:"id"`
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email,omitempty"`
	Position       string `json:"position"`

	Stage       string `json:"stage"` // screening, technical, final, offer
	Interviewer string `json:"interviewer,omitempty"`
	Location    string `json:"location,omitempty"` // room or meeting link

	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`

	Outcome   string    `json:"outcome,omitempty"` // pending, passed, failed, no_show
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// internal/domain/lead/entity.go
package lead

import "time"

type Lead struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
	Position string `json:"position,omitempty"`

	// Classification
	Status   string `json:"status"` // new, contacted, qualified, converted, lost
	LabelID  *int64 `json:"label_id,omitempty"`
	SourceID *int64 `json:"source_id,omitempty"`

	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LeadStats struct {
	TotalLeads     int64 `json:"total_leads"`
	NewThisMonth   int64 `json:"new_this_month"`
	QualifiedLeads int64 `json:"qualified_leads"`
	ConvertedLeads int64 `json:"converted_leads"`
}

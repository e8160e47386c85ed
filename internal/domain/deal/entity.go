// internal/domain/deal/entity.go
package deal

import "time"

type Deal struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	LeadID *int64 `json:"lead_id,omitempty"`

	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Stage    string  `json:"stage"` // prospect, proposal, negotiation, won, lost

	ExpectedCloseAt *time.Time `json:"expected_close_at,omitempty"`
	ClosedAt        *time.Time `json:"closed_at,omitempty"`

	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DealStats struct {
	TotalDeals    int64   `json:"total_deals"`
	OpenDeals     int64   `json:"open_deals"`
	WonDeals      int64   `json:"won_deals"`
	PipelineValue float64 `json:"pipeline_value"`
}

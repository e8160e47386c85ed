// internal/domain/deal/dto.go
package deal

import "time"

type CreateDealRequest struct {
	Name            string     `json:"name" binding:"required,max=255"`
	LeadID          *int64     `json:"lead_id"`
	Amount          float64    `json:"amount" binding:"min=0"`
	Currency        string     `json:"currency" binding:"omitempty,len=3"`
	Stage           string     `json:"stage" binding:"omitempty,oneof=prospect proposal negotiation won lost"`
	ExpectedCloseAt *time.Time `json:"expected_close_at"`
}

type UpdateDealRequest struct {
	Name            *string    `json:"name" binding:"omitempty,max=255"`
	LeadID          *int64     `json:"lead_id"`
	Amount          *float64   `json:"amount" binding:"omitempty,min=0"`
	Currency        *string    `json:"currency" binding:"omitempty,len=3"`
	Stage           *string    `json:"stage" binding:"omitempty,oneof=prospect proposal negotiation won lost"`
	ExpectedCloseAt *time.Time `json:"expected_close_at"`
}

type DealListFilters struct {
	Stage     string `form:"stage" binding:"omitempty,oneof=prospect proposal negotiation won lost"`
	LeadID    *int64 `form:"lead_id"`
	Search    string `form:"search"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

type DealListResponse struct {
	Deals      []Deal `json:"deals"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}

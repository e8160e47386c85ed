// internal/domain/contract/dto.go
package contract

import "time"

type CreateContractRequest struct {
	Title      string     `json:"title" binding:"required,max=255"`
	TypeID     int64      `json:"type_id" binding:"required"`
	DealID     *int64     `json:"deal_id"`
	ClientName string     `json:"client_name" binding:"required,max=255"`
	Value      float64    `json:"value" binding:"min=0"`
	Currency   string     `json:"currency" binding:"omitempty,len=3"`
	Status     string     `json:"status" binding:"omitempty,oneof=draft active expired terminated"`
	StartDate  time.Time  `json:"start_date" binding:"required"`
	EndDate    *time.Time `json:"end_date"`
}

type UpdateContractRequest struct {
	Title      *string    `json:"title" binding:"omitempty,max=255"`
	TypeID     *int64     `json:"type_id"`
	DealID     *int64     `json:"deal_id"`
	ClientName *string    `json:"client_name" binding:"omitempty,max=255"`
	Value      *float64   `json:"value" binding:"omitempty,min=0"`
	Currency   *string    `json:"currency" binding:"omitempty,len=3"`
	Status     *string    `json:"status" binding:"omitempty,oneof=draft active expired terminated"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
}

type ContractListFilters struct {
	Status    string `form:"status" binding:"omitempty,oneof=draft active expired terminated"`
	TypeID    *int64 `form:"type_id"`
	Search    string `form:"search"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

type ContractListResponse struct {
	Contracts  []Contract `json:"contracts"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

type CreateContractTypeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

type UpdateContractTypeRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

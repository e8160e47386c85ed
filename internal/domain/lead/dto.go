// internal/domain/lead/dto.go
package lead

type CreateLeadRequest struct {
	FullName string `json:"full_name" binding:"required,max=255"`
	Email    string `json:"email" binding:"omitempty,email,max=255"`
	Phone    string `json:"phone" binding:"max=20"`
	Company  string `json:"company" binding:"max=255"`
	Position string `json:"position" binding:"max=255"`
	Status   string `json:"status" binding:"omitempty,oneof=new contacted qualified converted lost"`
	LabelID  *int64 `json:"label_id"`
	SourceID *int64 `json:"source_id"`
}

type UpdateLeadRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,max=255"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	Company  *string `json:"company" binding:"omitempty,max=255"`
	Position *string `json:"position" binding:"omitempty,max=255"`
	Status   *string `json:"status" binding:"omitempty,oneof=new contacted qualified converted lost"`
	LabelID  *int64  `json:"label_id"`
	SourceID *int64  `json:"source_id"`
}

type LeadListFilters struct {
	Status    string `form:"status" binding:"omitempty,oneof=new contacted qualified converted lost"`
	LabelID   *int64 `form:"label_id"`
	SourceID  *int64 `form:"source_id"`
	Search    string `form:"search"` // name, email, phone, company
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

type LeadListResponse struct {
	Leads      []Lead `json:"leads"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}

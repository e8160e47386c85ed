// internal/domain/note/dto.go
package note

type CreateNoteRequest struct {
	ParentType string `json:"parent_type" binding:"required,oneof=lead deal contract interview"`
	ParentID   int64  `json:"parent_id" binding:"required"`
	Body       string `json:"body" binding:"required,max=10000"`
}

type UpdateNoteRequest struct {
	Body *string `json:"body" binding:"omitempty,max=10000"`
}

type NoteListFilters struct {
	ParentType string `form:"parent_type" binding:"omitempty,oneof=lead deal contract interview"`
	ParentID   *int64 `form:"parent_id"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type NoteListResponse struct {
	Notes      []Note `json:"notes"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}

// internal/handlers/note/note_handler.go
package note

import (
	"net/http"
	"strconv"

	"crmdesk-console/internal/domain/note"
	"crmdesk-console/internal/pkg/response"
	service "crmdesk-console/internal/service/note"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	noteService *service.Service
}

func NewNoteHandler(noteService *service.Service) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// ListNotes retrieves notes, usually filtered by parent record
func (h *NoteHandler) ListNotes(c *gin.Context) {
	var filters note.NoteListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.noteService.List(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to list notes", err)
		return
	}

	response.Success(c, http.StatusOK, "notes retrieved", result)
}

// GetNote retrieves a note by ID
func (h *NoteHandler) GetNote(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid note ID", err)
		return
	}

	result, err := h.noteService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "note not found", err)
		return
	}

	response.Success(c, http.StatusOK, "note retrieved", result)
}

// CreateNote attaches a note to a parent record
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req note.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.noteService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to create note", err)
		return
	}

	response.Success(c, http.StatusCreated, "note created successfully", result)
}

// UpdateNote updates an existing note
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid note ID", err)
		return
	}

	var req note.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.noteService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to update note", err)
		return
	}

	response.Success(c, http.StatusOK, "note updated successfully", result)
}

// DeleteNote deletes a note
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid note ID", err)
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusBadGateway, "failed to delete note", err)
		return
	}

	response.Success(c, http.StatusOK, "note deleted successfully", nil)
}

func parseID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

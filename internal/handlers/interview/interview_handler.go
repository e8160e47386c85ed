// internal/handlers/interview/interview_handler.go
package interview

import (
	"net/http"
	"strconv"

	"crmdesk-console/internal/domain/interview"
	"crmdesk-console/internal/pkg/response"
	service "crmdesk-console/internal/service/interview"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewService *service.Service
}

func NewInterviewHandler(interviewService *service.Service) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
	}
}

// ListInterviews retrieves interviews with filters
func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	var filters interview.InterviewListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.interviewService.List(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to list interviews", err)
		return
	}

	response.Success(c, http.StatusOK, "interviews retrieved", result)
}

// GetCalendar retrieves interviews inside a date window for the calendar view
func (h *InterviewHandler) GetCalendar(c *gin.Context) {
	var filters interview.CalendarFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.interviewService.Calendar(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to load calendar", err)
		return
	}

	response.Success(c, http.StatusOK, "calendar retrieved", result)
}

// GetInterview retrieves an interview by ID
func (h *InterviewHandler) GetInterview(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid interview ID", err)
		return
	}

	result, err := h.interviewService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "interview not found", err)
		return
	}

	response.Success(c, http.StatusOK, "interview retrieved", result)
}

// CreateInterview schedules a new interview
func (h *InterviewHandler) CreateInterview(c *gin.Context) {
	var req interview.CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.interviewService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to create interview", err)
		return
	}

	response.Success(c, http.StatusCreated, "interview created successfully", result)
}

// UpdateInterview updates an existing interview
func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid interview ID", err)
		return
	}

	var req interview.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.interviewService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to update interview", err)
		return
	}

	response.Success(c, http.StatusOK, "interview updated successfully", result)
}

// DeleteInterview deletes an interview
func (h *InterviewHandler) DeleteInterview(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid interview ID", err)
		return
	}

	if err := h.interviewService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusBadGateway, "failed to delete interview", err)
		return
	}

	response.Success(c, http.StatusOK, "interview deleted successfully", nil)
}

func parseID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

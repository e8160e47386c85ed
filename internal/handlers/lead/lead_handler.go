// internal/handlers/lead/lead_handler.go
package lead

import (
	"net/http"
	"strconv"

	"crmdesk-console/internal/domain/followup"
	"crmdesk-console/internal/domain/lead"
	"crmdesk-console/internal/pkg/response"
	service "crmdesk-console/internal/service/lead"

	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	leadService *service.Service
}

func NewLeadHandler(leadService *service.Service) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// ListLeads retrieves leads with filters
func (h *LeadHandler) ListLeads(c *gin.Context) {
	var filters lead.LeadListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.leadService.List(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to list leads", err)
		return
	}

	response.Success(c, http.StatusOK, "leads retrieved", result)
}

// GetLead retrieves a lead by ID
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid lead ID", err)
		return
	}

	result, err := h.leadService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "lead not found", err)
		return
	}

	response.Success(c, http.StatusOK, "lead retrieved", result)
}

// GetLeadStats retrieves aggregate lead counts for the overview widgets
func (h *LeadHandler) GetLeadStats(c *gin.Context) {
	result, err := h.leadService.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to load lead stats", err)
		return
	}

	response.Success(c, http.StatusOK, "lead stats retrieved", result)
}

// CreateLead creates a new lead
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req lead.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.leadService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to create lead", err)
		return
	}

	response.Success(c, http.StatusCreated, "lead created successfully", result)
}

// UpdateLead updates an existing lead
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid lead ID", err)
		return
	}

	var req lead.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.leadService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to update lead", err)
		return
	}

	response.Success(c, http.StatusOK, "lead updated successfully", result)
}

// DeleteLead deletes a lead
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid lead ID", err)
		return
	}

	if err := h.leadService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusBadGateway, "failed to delete lead", err)
		return
	}

	response.Success(c, http.StatusOK, "lead deleted successfully", nil)
}

// ListFollowUps retrieves the follow-ups attached to a lead
func (h *LeadHandler) ListFollowUps(c *gin.Context) {
	leadID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid lead ID", err)
		return
	}

	result, err := h.leadService.ListFollowUps(c.Request.Context(), leadID)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to list follow-ups", err)
		return
	}

	response.Success(c, http.StatusOK, "follow-ups retrieved", result)
}

// CreateFollowUp attaches a follow-up to a lead
func (h *LeadHandler) CreateFollowUp(c *gin.Context) {
	leadID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid lead ID", err)
		return
	}

	var req followup.CreateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.leadService.CreateFollowUp(c.Request.Context(), leadID, &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to create follow-up", err)
		return
	}

	response.Success(c, http.StatusCreated, "follow-up created successfully", result)
}

// UpdateFollowUp updates a follow-up on a lead
func (h *LeadHandler) UpdateFollowUp(c *gin.Context) {
	leadID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid lead ID", err)
		return
	}

	followUpID, err := parseID(c, "followup_id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid follow-up ID", err)
		return
	}

	var req followup.UpdateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.leadService.UpdateFollowUp(c.Request.Context(), leadID, followUpID, &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to update follow-up", err)
		return
	}

	response.Success(c, http.StatusOK, "follow-up updated successfully", result)
}

// DeleteFollowUp removes a follow-up from a lead
func (h *LeadHandler) DeleteFollowUp(c *gin.Context) {
	leadID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid lead ID", err)
		return
	}

	followUpID, err := parseID(c, "followup_id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid follow-up ID", err)
		return
	}

	if err := h.leadService.DeleteFollowUp(c.Request.Context(), leadID, followUpID); err != nil {
		response.Error(c, http.StatusBadGateway, "failed to delete follow-up", err)
		return
	}

	response.Success(c, http.StatusOK, "follow-up deleted successfully", nil)
}

func parseID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

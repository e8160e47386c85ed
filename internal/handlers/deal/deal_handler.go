// internal/handlers/deal/deal_handler.go
package deal

import (
	"net/http"
	"strconv"

	"crmdesk-console/internal/domain/deal"
	"crmdesk-console/internal/domain/followup"
	"crmdesk-console/internal/pkg/response"
	service "crmdesk-console/internal/service/deal"

	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	dealService *service.Service
}

func NewDealHandler(dealService *service.Service) *DealHandler {
	return &DealHandler{
		dealService: dealService,
	}
}

// ListDeals retrieves deals with filters
func (h *DealHandler) ListDeals(c *gin.Context) {
	var filters deal.DealListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.dealService.List(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to list deals", err)
		return
	}

	response.Success(c, http.StatusOK, "deals retrieved", result)
}

// GetDeal retrieves a deal by ID
func (h *DealHandler) GetDeal(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid deal ID", err)
		return
	}

	result, err := h.dealService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "deal not found", err)
		return
	}

	response.Success(c, http.StatusOK, "deal retrieved", result)
}

// GetDealStats retrieves aggregate deal metrics for the overview widgets
func (h *DealHandler) GetDealStats(c *gin.Context) {
	result, err := h.dealService.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to load deal stats", err)
		return
	}

	response.Success(c, http.StatusOK, "deal stats retrieved", result)
}

// CreateDeal creates a new deal
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var req deal.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.dealService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to create deal", err)
		return
	}

	response.Success(c, http.StatusCreated, "deal created successfully", result)
}

// UpdateDeal updates an existing deal
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid deal ID", err)
		return
	}

	var req deal.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.dealService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to update deal", err)
		return
	}

	response.Success(c, http.StatusOK, "deal updated successfully", result)
}

// DeleteDeal deletes a deal
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid deal ID", err)
		return
	}

	if err := h.dealService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusBadGateway, "failed to delete deal", err)
		return
	}

	response.Success(c, http.StatusOK, "deal deleted successfully", nil)
}

// ListFollowUps retrieves the follow-ups attached to a deal
func (h *DealHandler) ListFollowUps(c *gin.Context) {
	dealID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid deal ID", err)
		return
	}

	result, err := h.dealService.ListFollowUps(c.Request.Context(), dealID)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to list follow-ups", err)
		return
	}

	response.Success(c, http.StatusOK, "follow-ups retrieved", result)
}

// CreateFollowUp attaches a follow-up to a deal
func (h *DealHandler) CreateFollowUp(c *gin.Context) {
	dealID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid deal ID", err)
		return
	}

	var req followup.CreateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.dealService.CreateFollowUp(c.Request.Context(), dealID, &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to create follow-up", err)
		return
	}

	response.Success(c, http.StatusCreated, "follow-up created successfully", result)
}

// UpdateFollowUp updates a follow-up on a deal
func (h *DealHandler) UpdateFollowUp(c *gin.Context) {
	dealID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid deal ID", err)
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

	result, err := h.dealService.UpdateFollowUp(c.Request.Context(), dealID, followUpID, &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to update follow-up", err)
		return
	}

	response.Success(c, http.StatusOK, "follow-up updated successfully", result)
}

// DeleteFollowUp removes a follow-up from a deal
func (h *DealHandler) DeleteFollowUp(c *gin.Context) {
	dealID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid deal ID", err)
		return
	}

	followUpID, err := parseID(c, "followup_id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid follow-up ID", err)
		return
	}

	if err := h.dealService.DeleteFollowUp(c.Request.Context(), dealID, followUpID); err != nil {
		response.Error(c, http.StatusBadGateway, "failed to delete follow-up", err)
		return
	}

	response.Success(c, http.StatusOK, "follow-up deleted successfully", nil)
}

func parseID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// internal/handlers/catalog/catalog_handler.go
package catalog

import (
	"net/http"
	"strconv"

	"crmdesk-console/internal/domain/catalog"
	"crmdesk-console/internal/pkg/response"
	service "crmdesk-console/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the label and source lookup tables that lead and deal
// forms are populated from.
type CatalogHandler struct {
	catalogService *service.Service
}

func NewCatalogHandler(catalogService *service.Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListLabels retrieves all labels
func (h *CatalogHandler) ListLabels(c *gin.Context) {
	result, err := h.catalogService.ListLabels(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to list labels", err)
		return
	}

	response.Success(c, http.StatusOK, "labels retrieved", result)
}

// CreateLabel creates a label
func (h *CatalogHandler) CreateLabel(c *gin.Context) {
	var req catalog.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.catalogService.CreateLabel(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to create label", err)
		return
	}

	response.Success(c, http.StatusCreated, "label created successfully", result)
}

// UpdateLabel updates a label
func (h *CatalogHandler) UpdateLabel(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid label ID", err)
		return
	}

	var req catalog.UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.catalogService.UpdateLabel(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to update label", err)
		return
	}

	response.Success(c, http.StatusOK, "label updated successfully", result)
}

// DeleteLabel deletes a label
func (h *CatalogHandler) DeleteLabel(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid label ID", err)
		return
	}

	if err := h.catalogService.DeleteLabel(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusBadGateway, "failed to delete label", err)
		return
	}

	response.Success(c, http.StatusOK, "label deleted successfully", nil)
}

// ListSources retrieves all lead sources
func (h *CatalogHandler) ListSources(c *gin.Context) {
	result, err := h.catalogService.ListSources(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to list sources", err)
		return
	}

	response.Success(c, http.StatusOK, "sources retrieved", result)
}

// CreateSource creates a lead source
func (h *CatalogHandler) CreateSource(c *gin.Context) {
	var req catalog.CreateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.catalogService.CreateSource(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to create source", err)
		return
	}

	response.Success(c, http.StatusCreated, "source created successfully", result)
}

// UpdateSource updates a lead source
func (h *CatalogHandler) UpdateSource(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid source ID", err)
		return
	}

	var req catalog.UpdateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.catalogService.UpdateSource(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to update source", err)
		return
	}

	response.Success(c, http.StatusOK, "source updated successfully", result)
}

// DeleteSource deletes a lead source
func (h *CatalogHandler) DeleteSource(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid source ID", err)
		return
	}

	if err := h.catalogService.DeleteSource(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusBadGateway, "failed to delete source", err)
		return
	}

	response.Success(c, http.StatusOK, "source deleted successfully", nil)
}

func parseID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// internal/handlers/contract/contract_handler.go
package contract

import (
	"net/http"
	"strconv"

	"crmdesk-console/internal/domain/contract"
	"crmdesk-console/internal/pkg/response"
	service "crmdesk-console/internal/service/contract"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	contractService *service.Service
}

func NewContractHandler(contractService *service.Service) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
	}
}

// ListContracts retrieves contracts with filters
func (h *ContractHandler) ListContracts(c *gin.Context) {
	var filters contract.ContractListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.contractService.List(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to list contracts", err)
		return
	}

	response.Success(c, http.StatusOK, "contracts retrieved", result)
}

// GetContract retrieves a contract by ID
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid contract ID", err)
		return
	}

	result, err := h.contractService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "contract not found", err)
		return
	}

	response.Success(c, http.StatusOK, "contract retrieved", result)
}

// CreateContract creates a new contract
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req contract.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.contractService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to create contract", err)
		return
	}

	response.Success(c, http.StatusCreated, "contract created successfully", result)
}

// UpdateContract updates an existing contract
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid contract ID", err)
		return
	}

	var req contract.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.contractService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to update contract", err)
		return
	}

	response.Success(c, http.StatusOK, "contract updated successfully", result)
}

// DeleteContract deletes a contract
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid contract ID", err)
		return
	}

	if err := h.contractService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusBadGateway, "failed to delete contract", err)
		return
	}

	response.Success(c, http.StatusOK, "contract deleted successfully", nil)
}

// ========== Contract Type Endpoints ==========

// ListContractTypes retrieves the contract type catalog
func (h *ContractHandler) ListContractTypes(c *gin.Context) {
	result, err := h.contractService.ListTypes(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to list contract types", err)
		return
	}

	response.Success(c, http.StatusOK, "contract types retrieved", result)
}

// CreateContractType creates a contract type
func (h *ContractHandler) CreateContractType(c *gin.Context) {
	var req contract.CreateContractTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.contractService.CreateType(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to create contract type", err)
		return
	}

	response.Success(c, http.StatusCreated, "contract type created successfully", result)
}

// UpdateContractType updates a contract type
func (h *ContractHandler) UpdateContractType(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid contract type ID", err)
		return
	}

	var req contract.UpdateContractTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.contractService.UpdateType(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to update contract type", err)
		return
	}

	response.Success(c, http.StatusOK, "contract type updated successfully", result)
}

// DeleteContractType deletes a contract type
func (h *ContractHandler) DeleteContractType(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid contract type ID", err)
		return
	}

	if err := h.contractService.DeleteType(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusBadGateway, "failed to delete contract type", err)
		return
	}

	response.Success(c, http.StatusOK, "contract type deleted successfully", nil)
}

func parseID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// internal/crmapi/contracts.go
package crmapi

import (
	"context"
	"fmt"
	"net/url"

	"crmdesk-console/internal/domain/contract"
)

func (c *Client) ListContracts(ctx context.Context, f contract.ContractListFilters) (*contract.ContractListResponse, error) {
	q := url.Values{}
	setNonEmpty(q, "status", f.Status)
	setInt64Ptr(q, "type_id", f.TypeID)
	setNonEmpty(q, "search", f.Search)
	setPaging(q, f.Page, f.PageSize, f.SortBy, f.SortOrder)

	var out contract.ContractListResponse
	if err := c.get(ctx, "/api/v1/contracts", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetContract(ctx context.Context, id int64) (*contract.Contract, error) {
	var out contract.Contract
	if err := c.get(ctx, fmt.Sprintf("/api/v1/contracts/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateContract(ctx context.Context, req *contract.CreateContractRequest) (*contract.Contract, error) {
	var out contract.Contract
	if err := c.post(ctx, "/api/v1/contracts", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateContract(ctx context.Context, id int64, req *contract.UpdateContractRequest) (*contract.Contract, error) {
	var out contract.Contract
	if err := c.put(ctx, fmt.Sprintf("/api/v1/contracts/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteContract(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/contracts/%d", id))
}

// ========== Contract types ==========

func (c *Client) ListContractTypes(ctx context.Context) ([]contract.ContractType, error) {
	var out []contract.ContractType
	if err := c.get(ctx, "/api/v1/contract-types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateContractType(ctx context.Context, req *contract.CreateContractTypeRequest) (*contract.ContractType, error) {
	var out contract.ContractType
	if err := c.post(ctx, "/api/v1/contract-types", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateContractType(ctx context.Context, id int64, req *contract.UpdateContractTypeRequest) (*contract.ContractType, error) {
	var out contract.ContractType
	if err := c.put(ctx, fmt.Sprintf("/api/v1/contract-types/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteContractType(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/contract-types/%d", id))
}

// internal/crmapi/deals.go
package crmapi

import (
	"context"
	"fmt"
	"net/url"

	"crmdesk-console/internal/domain/deal"
	"crmdesk-console/internal/domain/followup"
)

func (c *Client) ListDeals(ctx context.Context, f deal.DealListFilters) (*deal.DealListResponse, error) {
	q := url.Values{}
	setNonEmpty(q, "stage", f.Stage)
	setInt64Ptr(q, "lead_id", f.LeadID)
	setNonEmpty(q, "search", f.Search)
	setPaging(q, f.Page, f.PageSize, f.SortBy, f.SortOrder)

	var out deal.DealListResponse
	if err := c.get(ctx, "/api/v1/deals", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDeal(ctx context.Context, id int64) (*deal.Deal, error) {
	var out deal.Deal
	if err := c.get(ctx, fmt.Sprintf("/api/v1/deals/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateDeal(ctx context.Context, req *deal.CreateDealRequest) (*deal.Deal, error) {
	var out deal.Deal
	if err := c.post(ctx, "/api/v1/deals", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDeal(ctx context.Context, id int64, req *deal.UpdateDealRequest) (*deal.Deal, error) {
	var out deal.Deal
	if err := c.put(ctx, fmt.Sprintf("/api/v1/deals/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDeal(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/deals/%d", id))
}

func (c *Client) GetDealStats(ctx context.Context) (*deal.DealStats, error) {
	var out deal.DealStats
	if err := c.get(ctx, "/api/v1/deals/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ========== Deal follow-ups ==========

func (c *Client) ListDealFollowUps(ctx context.Context, dealID int64) ([]followup.FollowUp, error) {
	var out []followup.FollowUp
	if err := c.get(ctx, fmt.Sprintf("/api/v1/deals/%d/follow-ups", dealID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDealFollowUp(ctx context.Context, dealID int64, req *followup.CreateFollowUpRequest) (*followup.FollowUp, error) {
	var out followup.FollowUp
	if err := c.post(ctx, fmt.Sprintf("/api/v1/deals/%d/follow-ups", dealID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDealFollowUp(ctx context.Context, dealID, id int64, req *followup.UpdateFollowUpRequest) (*followup.FollowUp, error) {
	var out followup.FollowUp
	if err := c.put(ctx, fmt.Sprintf("/api/v1/deals/%d/follow-ups/%d", dealID, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDealFollowUp(ctx context.Context, dealID, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/deals/%d/follow-ups/%d", dealID, id))
}

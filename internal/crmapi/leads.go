// internal/crmapi/leads.go
package crmapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"crmdesk-console/internal/domain/followup"
	"crmdesk-console/internal/domain/lead"
)

func (c *Client) ListLeads(ctx context.Context, f lead.LeadListFilters) (*lead.LeadListResponse, error) {
	q := url.Values{}
	setNonEmpty(q, "status", f.Status)
	setInt64Ptr(q, "label_id", f.LabelID)
	setInt64Ptr(q, "source_id", f.SourceID)
	setNonEmpty(q, "search", f.Search)
	setPaging(q, f.Page, f.PageSize, f.SortBy, f.SortOrder)

	var out lead.LeadListResponse
	if err := c.get(ctx, "/api/v1/leads", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetLead(ctx context.Context, id int64) (*lead.Lead, error) {
	var out lead.Lead
	if err := c.get(ctx, fmt.Sprintf("/api/v1/leads/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateLead(ctx context.Context, req *lead.CreateLeadRequest) (*lead.Lead, error) {
	var out lead.Lead
	if err := c.post(ctx, "/api/v1/leads", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLead(ctx context.Context, id int64, req *lead.UpdateLeadRequest) (*lead.Lead, error) {
	var out lead.Lead
	if err := c.put(ctx, fmt.Sprintf("/api/v1/leads/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLead(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/leads/%d", id))
}

func (c *Client) GetLeadStats(ctx context.Context) (*lead.LeadStats, error) {
	var out lead.LeadStats
	if err := c.get(ctx, "/api/v1/leads/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ========== Lead follow-ups ==========

func (c *Client) ListLeadFollowUps(ctx context.Context, leadID int64) ([]followup.FollowUp, error) {
	var out []followup.FollowUp
	if err := c.get(ctx, fmt.Sprintf("/api/v1/leads/%d/follow-ups", leadID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateLeadFollowUp(ctx context.Context, leadID int64, req *followup.CreateFollowUpRequest) (*followup.FollowUp, error) {
	var out followup.FollowUp
	if err := c.post(ctx, fmt.Sprintf("/api/v1/leads/%d/follow-ups", leadID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLeadFollowUp(ctx context.Context, leadID, id int64, req *followup.UpdateFollowUpRequest) (*followup.FollowUp, error) {
	var out followup.FollowUp
	if err := c.put(ctx, fmt.Sprintf("/api/v1/leads/%d/follow-ups/%d", leadID, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLeadFollowUp(ctx context.Context, leadID, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/leads/%d/follow-ups/%d", leadID, id))
}

// ========== query helpers ==========

func setNonEmpty(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

func setInt64Ptr(q url.Values, key string, val *int64) {
	if val != nil {
		q.Set(key, strconv.FormatInt(*val, 10))
	}
}

func setPaging(q url.Values, page, pageSize int, sortBy, sortOrder string) {
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	setNonEmpty(q, "sort_by", sortBy)
	setNonEmpty(q, "sort_order", sortOrder)
}

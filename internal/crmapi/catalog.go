// internal/crmapi/catalog.go
package crmapi

import (
	"context"
	"fmt"

	"crmdesk-console/internal/domain/catalog"
)

// ========== Labels ==========

func (c *Client) ListLabels(ctx context.Context) ([]catalog.Label, error) {
	var out []catalog.Label
	if err := c.get(ctx, "/api/v1/labels", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateLabel(ctx context.Context, req *catalog.CreateLabelRequest) (*catalog.Label, error) {
	var out catalog.Label
	if err := c.post(ctx, "/api/v1/labels", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLabel(ctx context.Context, id int64, req *catalog.UpdateLabelRequest) (*catalog.Label, error) {
	var out catalog.Label
	if err := c.put(ctx, fmt.Sprintf("/api/v1/labels/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLabel(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/labels/%d", id))
}

// ========== Sources ==========

func (c *Client) ListSources(ctx context.Context) ([]catalog.Source, error) {
	var out []catalog.Source
	if err := c.get(ctx, "/api/v1/sources", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSource(ctx context.Context, req *catalog.CreateSourceRequest) (*catalog.Source, error) {
	var out catalog.Source
	if err := c.post(ctx, "/api/v1/sources", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSource(ctx context.Context, id int64, req *catalog.UpdateSourceRequest) (*catalog.Source, error) {
	var out catalog.Source
	if err := c.put(ctx, fmt.Sprintf("/api/v1/sources/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSource(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/sources/%d", id))
}

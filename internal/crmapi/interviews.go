// internal/crmapi/interviews.go
package crmapi

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"crmdesk-console/internal/domain/interview"
)

func (c *Client) ListInterviews(ctx context.Context, f interview.InterviewListFilters) (*interview.InterviewListResponse, error) {
	q := url.Values{}
	setNonEmpty(q, "stage", f.Stage)
	setNonEmpty(q, "search", f.Search)
	setPaging(q, f.Page, f.PageSize, f.SortBy, f.SortOrder)

	var out interview.InterviewListResponse
	if err := c.get(ctx, "/api/v1/interviews", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InterviewCalendar lists every interview in a date window for the calendar
// view.
func (c *Client) InterviewCalendar(ctx context.Context, f interview.CalendarFilters) ([]interview.Interview, error) {
	q := url.Values{}
	q.Set("from", f.From.Format(time.DateOnly))
	q.Set("to", f.To.Format(time.DateOnly))

	var out []interview.Interview
	if err := c.get(ctx, "/api/v1/interviews/calendar", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetInterview(ctx context.Context, id int64) (*interview.Interview, error) {
	var out interview.Interview
	if err := c.get(ctx, fmt.Sprintf("/api/v1/interviews/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateInterview(ctx context.Context, req *interview.CreateInterviewRequest) (*interview.Interview, error) {
	var out interview.Interview
	if err := c.post(ctx, "/api/v1/interviews", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateInterview(ctx context.Context, id int64, req *interview.UpdateInterviewRequest) (*interview.Interview, error) {
	var out interview.Interview
	if err := c.put(ctx, fmt.Sprintf("/api/v1/interviews/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteInterview(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/interviews/%d", id))
}

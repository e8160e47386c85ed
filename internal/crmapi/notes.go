// internal/crmapi/notes.go
package crmapi

import (
	"context"
	"fmt"
	"net/url"

	"crmdesk-console/internal/domain/note"
)

func (c *Client) ListNotes(ctx context.Context, f note.NoteListFilters) (*note.NoteListResponse, error) {
	q := url.Values{}
	setNonEmpty(q, "parent_type", f.ParentType)
	setInt64Ptr(q, "parent_id", f.ParentID)
	setPaging(q, f.Page, f.PageSize, "", "")

	var out note.NoteListResponse
	if err := c.get(ctx, "/api/v1/notes", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetNote(ctx context.Context, id int64) (*note.Note, error) {
	var out note.Note
	if err := c.get(ctx, fmt.Sprintf("/api/v1/notes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateNote(ctx context.Context, req *note.CreateNoteRequest) (*note.Note, error) {
	var out note.Note
	if err := c.post(ctx, "/api/v1/notes", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateNote(ctx context.Context, id int64, req *note.UpdateNoteRequest) (*note.Note, error) {
	var out note.Note
	if err := c.put(ctx, fmt.Sprintf("/api/v1/notes/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/notes/%d", id))
}

// internal/service/note/note.go
package note

import (
	"context"
	"fmt"

	"crmdesk-console/internal/cache"
	"crmdesk-console/internal/crmapi"
	"crmdesk-console/internal/domain/note"

	"go.uber.org/zap"
)

const resource = "notes"

type Service struct {
	api    *crmapi.Client
	cache  *cache.QueryCache
	logger *zap.Logger
}

func NewService(api *crmapi.Client, qc *cache.QueryCache, logger *zap.Logger) *Service {
	return &Service{api: api, cache: qc, logger: logger}
}

func (s *Service) List(ctx context.Context, f note.NoteListFilters) (*note.NoteListResponse, error) {
	key := cache.Key(f)
	var cached note.NoteListResponse
	if s.cache.GetJSON(ctx, resource, key, &cached) {
		return &cached, nil
	}

	out, err := s.api.ListNotes(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, resource, key, out)
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*note.Note, error) {
	key := fmt.Sprintf("id=%d", id)
	var cached note.Note
	if s.cache.GetJSON(ctx, resource, key, &cached) {
		return &cached, nil
	}

	out, err := s.api.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, resource, key, out)
	return out, nil
}

func (s *Service) Create(ctx context.Context, req *note.CreateNoteRequest) (*note.Note, error) {
	out, err := s.api.CreateNote(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, resource)
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *note.UpdateNoteRequest) (*note.Note, error) {
	out, err := s.api.UpdateNote(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, resource)
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteNote(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, resource)
	return nil
}

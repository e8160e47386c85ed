// internal/service/catalog/catalog.go
package catalog

import (
	"context"

	"crmdesk-console/internal/cache"
	"crmdesk-console/internal/crmapi"
	"crmdesk-console/internal/domain/catalog"

	"go.uber.org/zap"
)

const (
	labelsResource  = "labels"
	sourcesResource = "sources"
)

// Service manages the label and source catalogs. Both are small and change
// rarely, so whole-list caching is enough.
type Service struct {
	api    *crmapi.Client
	cache  *cache.QueryCache
	logger *zap.Logger
}

func NewService(api *crmapi.Client, qc *cache.QueryCache, logger *zap.Logger) *Service {
	return &Service{api: api, cache: qc, logger: logger}
}

func (s *Service) ListLabels(ctx context.Context) ([]catalog.Label, error) {
	var cached []catalog.Label
	if s.cache.GetJSON(ctx, labelsResource, "all", &cached) {
		return cached, nil
	}

	out, err := s.api.ListLabels(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, labelsResource, "all", out)
	return out, nil
}

func (s *Service) CreateLabel(ctx context.Context, req *catalog.CreateLabelRequest) (*catalog.Label, error) {
	out, err := s.api.CreateLabel(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, labelsResource)
	return out, nil
}

func (s *Service) UpdateLabel(ctx context.Context, id int64, req *catalog.UpdateLabelRequest) (*catalog.Label, error) {
	out, err := s.api.UpdateLabel(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, labelsResource)
	return out, nil
}

func (s *Service) DeleteLabel(ctx context.Context, id int64) error {
	if err := s.api.DeleteLabel(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, labelsResource)
	return nil
}

func (s *Service) ListSources(ctx context.Context) ([]catalog.Source, error) {
	var cached []catalog.Source
	if s.cache.GetJSON(ctx, sourcesResource, "all", &cached) {
		return cached, nil
	}

	out, err := s.api.ListSources(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, sourcesResource, "all", out)
	return out, nil
}

func (s *Service) CreateSource(ctx context.Context, req *catalog.CreateSourceRequest) (*catalog.Source, error) {
	out, err := s.api.CreateSource(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, sourcesResource)
	return out, nil
}

func (s *Service) UpdateSource(ctx context.Context, id int64, req *catalog.UpdateSourceRequest) (*catalog.Source, error) {
	out, err := s.api.UpdateSource(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, sourcesResource)
	return out, nil
}

func (s *Service) DeleteSource(ctx context.Context, id int64) error {
	if err := s.api.DeleteSource(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, sourcesResource)
	return nil
}

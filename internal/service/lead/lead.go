// internal/service/lead/lead.go
package lead

import (
	"context"
	"fmt"

	"crmdesk-console/internal/cache"
	"crmdesk-console/internal/crmapi"
	"crmdesk-console/internal/domain/followup"
	"crmdesk-console/internal/domain/lead"

	"go.uber.org/zap"
)

const (
	resource          = "leads"
	followUpsResource = "lead_followups"
)

// Service serves lead data through the query cache: reads go through the
// cache, every mutation invalidates the resource.
type Service struct {
	api    *crmapi.Client
	cache  *cache.QueryCache
	logger *zap.Logger
}

func NewService(api *crmapi.Client, qc *cache.QueryCache, logger *zap.Logger) *Service {
	return &Service{api: api, cache: qc, logger: logger}
}

func (s *Service) List(ctx context.Context, f lead.LeadListFilters) (*lead.LeadListResponse, error) {
	key := cache.Key(f)
	var cached lead.LeadListResponse
	if s.cache.GetJSON(ctx, resource, key, &cached) {
		return &cached, nil
	}

	out, err := s.api.ListLeads(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, resource, key, out)
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*lead.Lead, error) {
	key := fmt.Sprintf("id=%d", id)
	var cached lead.Lead
	if s.cache.GetJSON(ctx, resource, key, &cached) {
		return &cached, nil
	}

	out, err := s.api.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, resource, key, out)
	return out, nil
}

func (s *Service) Stats(ctx context.Context) (*lead.LeadStats, error) {
	var cached lead.LeadStats
	if s.cache.GetJSON(ctx, resource, "stats", &cached) {
		return &cached, nil
	}

	out, err := s.api.GetLeadStats(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, resource, "stats", out)
	return out, nil
}

func (s *Service) Create(ctx context.Context, req *lead.CreateLeadRequest) (*lead.Lead, error) {
	out, err := s.api.CreateLead(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, resource)
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *lead.UpdateLeadRequest) (*lead.Lead, error) {
	out, err := s.api.UpdateLead(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, resource)
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteLead(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, resource)
	s.cache.Invalidate(ctx, followUpsResource)
	return nil
}

// ========== Follow-ups ==========

func (s *Service) ListFollowUps(ctx context.Context, leadID int64) ([]followup.FollowUp, error) {
	key := fmt.Sprintf("lead=%d", leadID)
	var cached []followup.FollowUp
	if s.cache.GetJSON(ctx, followUpsResource, key, &cached) {
		return cached, nil
	}

	out, err := s.api.ListLeadFollowUps(ctx, leadID)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, followUpsResource, key, out)
	return out, nil
}

func (s *Service) CreateFollowUp(ctx context.Context, leadID int64, req *followup.CreateFollowUpRequest) (*followup.FollowUp, error) {
	out, err := s.api.CreateLeadFollowUp(ctx, leadID, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, followUpsResource)
	return out, nil
}

func (s *Service) UpdateFollowUp(ctx context.Context, leadID, id int64, req *followup.UpdateFollowUpRequest) (*followup.FollowUp, error) {
	out, err := s.api.UpdateLeadFollowUp(ctx, leadID, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, followUpsResource)
	return out, nil
}

func (s *Service) DeleteFollowUp(ctx context.Context, leadID, id int64) error {
	if err := s.api.DeleteLeadFollowUp(ctx, leadID, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, followUpsResource)
	return nil
}

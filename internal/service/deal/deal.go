// internal/service/deal/deal.go
package deal

import (
	"context"
	"fmt"

	"crmdesk-console/internal/cache"
	"crmdesk-console/internal/crmapi"
	"crmdesk-console/internal/domain/deal"
	"crmdesk-console/internal/domain/followup"

	"go.uber.org/zap"
)

const (
	resource          = "deals"
	followUpsResource = "deal_followups"
)

type Service struct {
	api    *crmapi.Client
	cache  *cache.QueryCache
	logger *zap.Logger
}

func NewService(api *crmapi.Client, qc *cache.QueryCache, logger *zap.Logger) *Service {
	return &Service{api: api, cache: qc, logger: logger}
}

func (s *Service) List(ctx context.Context, f deal.DealListFilters) (*deal.DealListResponse, error) {
	key := cache.Key(f)
	var cached deal.DealListResponse
	if s.cache.GetJSON(ctx, resource, key, &cached) {
		return &cached, nil
	}

	out, err := s.api.ListDeals(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, resource, key, out)
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*deal.Deal, error) {
	key := fmt.Sprintf("id=%d", id)
	var cached deal.Deal
	if s.cache.GetJSON(ctx, resource, key, &cached) {
		return &cached, nil
	}

	out, err := s.api.GetDeal(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, resource, key, out)
	return out, nil
}

func (s *Service) Stats(ctx context.Context) (*deal.DealStats, error) {
	var cached deal.DealStats
	if s.cache.GetJSON(ctx, resource, "stats", &cached) {
		return &cached, nil
	}

	out, err := s.api.GetDealStats(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, resource, "stats", out)
	return out, nil
}

func (s *Service) Create(ctx context.Context, req *deal.CreateDealRequest) (*deal.Deal, error) {
	out, err := s.api.CreateDeal(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, resource)
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *deal.UpdateDealRequest) (*deal.Deal, error) {
	out, err := s.api.UpdateDeal(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, resource)
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteDeal(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, resource)
	s.cache.Invalidate(ctx, followUpsResource)
	return nil
}

// ========== Follow-ups ==========

func (s *Service) ListFollowUps(ctx context.Context, dealID int64) ([]followup.FollowUp, error) {
	key := fmt.Sprintf("deal=%d", dealID)
	var cached []followup.FollowUp
	if s.cache.GetJSON(ctx, followUpsResource, key, &cached) {
		return cached, nil
	}

	out, err := s.api.ListDealFollowUps(ctx, dealID)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, followUpsResource, key, out)
	return out, nil
}

func (s *Service) CreateFollowUp(ctx context.Context, dealID int64, req *followup.CreateFollowUpRequest) (*followup.FollowUp, error) {
	out, err := s.api.CreateDealFollowUp(ctx, dealID, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, followUpsResource)
	return out, nil
}

func (s *Service) UpdateFollowUp(ctx context.Context, dealID, id int64, req *followup.UpdateFollowUpRequest) (*followup.FollowUp, error) {
	out, err := s.api.UpdateDealFollowUp(ctx, dealID, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, followUpsResource)
	return out, nil
}

func (s *Service) DeleteFollowUp(ctx context.Context, dealID, id int64) error {
	if err := s.api.DeleteDealFollowUp(ctx, dealID, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, followUpsResource)
	return nil
}

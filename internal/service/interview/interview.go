// internal/service/interview/interview.go
package interview

import (
	"context"
	"fmt"

	"crmdesk-console/internal/cache"
	"crmdesk-console/internal/crmapi"
	"crmdesk-console/internal/domain/interview"

	"go.uber.org/zap"
)

const resource = "interviews"

type Service struct {
	api    *crmapi.Client
	cache  *cache.QueryCache
	logger *zap.Logger
}

func NewService(api *crmapi.Client, qc *cache.QueryCache, logger *zap.Logger) *Service {
	return &Service{api: api, cache: qc, logger: logger}
}

func (s *Service) List(ctx context.Context, f interview.InterviewListFilters) (*interview.InterviewListResponse, error) {
	key := cache.Key(f)
	var cached interview.InterviewListResponse
	if s.cache.GetJSON(ctx, resource, key, &cached) {
		return &cached, nil
	}

	out, err := s.api.ListInterviews(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, resource, key, out)
	return out, nil
}

// Calendar returns the interviews in one calendar window. Cached under the
// same resource as lists, so any mutation refreshes the calendar too.
func (s *Service) Calendar(ctx context.Context, f interview.CalendarFilters) ([]interview.Interview, error) {
	key := "calendar:" + cache.Key(f)
	var cached []interview.Interview
	if s.cache.GetJSON(ctx, resource, key, &cached) {
		return cached, nil
	}

	out, err := s.api.InterviewCalendar(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, resource, key, out)
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*interview.Interview, error) {
	key := fmt.Sprintf("id=%d", id)
	var cached interview.Interview
	if s.cache.GetJSON(ctx, resource, key, &cached) {
		return &cached, nil
	}

	out, err := s.api.GetInterview(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, resource, key, out)
	return out, nil
}

func (s *Service) Create(ctx context.Context, req *interview.CreateInterviewRequest) (*interview.Interview, error) {
	out, err := s.api.CreateInterview(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, resource)
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *interview.UpdateInterviewRequest) (*interview.Interview, error) {
	out, err := s.api.UpdateInterview(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, resource)
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteInterview(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, resource)
	return nil
}

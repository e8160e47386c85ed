// internal/service/contract/contract.go
package contract

import (
	"context"
	"fmt"

	"crmdesk-console/internal/cache"
	"crmdesk-console/internal/crmapi"
	"crmdesk-console/internal/domain/contract"

	"go.uber.org/zap"
)

const (
	resource      = "contracts"
	typesResource = "contract_types"
)

type Service struct {
	api    *crmapi.Client
	cache  *cache.QueryCache
	logger *zap.Logger
}

func NewService(api *crmapi.Client, qc *cache.QueryCache, logger *zap.Logger) *Service {
	return &Service{api: api, cache: qc, logger: logger}
}

func (s *Service) List(ctx context.Context, f contract.ContractListFilters) (*contract.ContractListResponse, error) {
	key := cache.Key(f)
	var cached contract.ContractListResponse
	if s.cache.GetJSON(ctx, resource, key, &cached) {
		return &cached, nil
	}

	out, err := s.api.ListContracts(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, resource, key, out)
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*contract.Contract, error) {
	key := fmt.Sprintf("id=%d", id)
	var cached contract.Contract
	if s.cache.GetJSON(ctx, resource, key, &cached) {
		return &cached, nil
	}

	out, err := s.api.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, resource, key, out)
	return out, nil
}

func (s *Service) Create(ctx context.Context, req *contract.CreateContractRequest) (*contract.Contract, error) {
	out, err := s.api.CreateContract(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, resource)
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *contract.UpdateContractRequest) (*contract.Contract, error) {
	out, err := s.api.UpdateContract(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, resource)
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteContract(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, resource)
	return nil
}

// ========== Contract types ==========

func (s *Service) ListTypes(ctx context.Context) ([]contract.ContractType, error) {
	var cached []contract.ContractType
	if s.cache.GetJSON(ctx, typesResource, "all", &cached) {
		return cached, nil
	}

	out, err := s.api.ListContractTypes(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, typesResource, "all", out)
	return out, nil
}

func (s *Service) CreateType(ctx context.Context, req *contract.CreateContractTypeRequest) (*contract.ContractType, error) {
	out, err := s.api.CreateContractType(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, typesResource)
	return out, nil
}

func (s *Service) UpdateType(ctx context.Context, id int64, req *contract.UpdateContractTypeRequest) (*contract.ContractType, error) {
	out, err := s.api.UpdateContractType(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, typesResource)
	// Contracts embed their type; stale type names would linger otherwise.
	s.cache.Invalidate(ctx, resource)
	return out, nil
}

func (s *Service) DeleteType(ctx context.Context, id int64) error {
	if err := s.api.DeleteContractType(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, typesResource)
	return nil
}

package catalog

import (
	"context"
	"fmt"

	"github.com/ptcharoen/agrirot/internal/domain"
	"github.com/ptcharoen/agrirot/internal/pkg/constants"
	"github.com/ptcharoen/agrirot/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListMoAGroups(ctx context.Context) ([]*domain.MoAGroup, error) {
	groups, err := s.store.ListMoAGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListMoAGroups: %w", err)
	}

	return groups, nil
}

func (s *Service) ListMoAGroupsBySystem(ctx context.Context, system string) ([]*domain.MoAGroup, error) {
	switch system {
	case domain.SystemIRAC, domain.SystemFRAC, domain.SystemHRAC:
	default:
		return nil, fmt.Errorf("%q: %w", system, constants.ErrUnknownClassificationSystem)
	}

	groups, err := s.store.ListMoAGroupsBySystem(ctx, system)
	if err != nil {
		return nil, fmt.Errorf("store.ListMoAGroupsBySystem: %w", err)
	}

	return groups, nil
}

func (s *Service) ProductsForTarget(ctx context.Context, targetID int64) ([]*domain.TargetProduct, error) {
	products, err := s.store.ListProductsForTarget(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("store.ListProductsForTarget: %w", err)
	}
	if products == nil {
		products = []*domain.TargetProduct{}
	}

	return products, nil
}

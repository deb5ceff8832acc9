package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rafaelleal24/fastfood-express/internal/core/domain"
	"github.com/rafaelleal24/fastfood-express/internal/core/logger"
	"github.com/rafaelleal24/fastfood-express/internal/core/port"
	"github.com/rafaelleal24/fastfood-express/internal/core/serviceerrors"
)

type MenuService struct {
	menuRepository port.MenuPort
	catalog        atomic.Pointer[domain.Catalog]
}

func NewMenuService(menuRepository port.MenuPort) *MenuService {
	return &MenuService{menuRepository: menuRepository}
}

// Load validates the configured items, stores them and keeps the stored
// catalog in memory for the rest of the process lifetime.
func (s *MenuService) Load(ctx context.Context, items []domain.MenuItem) (*domain.Catalog, error) {
	if _, err := domain.NewCatalog(items); err != nil {
		return nil, fmt.Errorf("invalid menu configuration: %w", err)
	}

	if err := s.menuRepository.Seed(ctx, items); err != nil {
		logger.Error(ctx, "menu: seed failed", err, map[string]any{
			"items": len(items),
		})
		return nil, err
	}

	stored, err := s.menuRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := domain.NewCatalog(stored)
	if err != nil {
		return nil, fmt.Errorf("invalid stored menu: %w", err)
	}

	s.catalog.Store(catalog)
	logger.Info(ctx, "Menu loaded", map[string]any{"items": catalog.Len()})
	return catalog, nil
}

func (s *MenuService) Catalog() (*domain.Catalog, error) {
	catalog := s.catalog.Load()
	if catalog == nil {
		return nil, serviceerrors.NewNotFoundError("menu not loaded")
	}
	return catalog, nil
}

func (s *MenuService) GetAll() ([]domain.MenuItem, error) {
	catalog, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return catalog.Items(), nil
}

func (s *MenuService) Lookup(name string) (domain.MenuItem, error) {
	catalog, err := s.Catalog()
	if err != nil {
		return domain.MenuItem{}, err
	}
	item, ok := catalog.Lookup(name)
	if !ok {
		return domain.MenuItem{}, serviceerrors.NewNotFoundError(fmt.Sprintf("menu item %q not found", name))
	}
	return item, nil
}

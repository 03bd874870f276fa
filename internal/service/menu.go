package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hamburgeria-backend/internal/models"
	"hamburgeria-backend/internal/repo"
	"hamburgeria-backend/internal/transport"
)

var ErrValidation = errors.New("validation") // 400

type MenuService struct {
	Repo *repo.GormRepo
}

func (s *MenuService) ListAvailable(ctx context.Context) ([]models.MenuItem, error) {
	return s.Repo.ListAvailableMenuItems(ctx)
}

func (s *MenuService) Get(ctx context.Context, id uint) (*models.MenuItem, error) {
	return s.Repo.GetMenuItem(ctx, id)
}

// Create trims and validates the request, then inserts. The repository trusts
// this layer: it does not re-validate.
func (s *MenuService) Create(ctx context.Context, req transport.CreateMenuItemRequest) (*models.MenuItem, error) {
	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)

	if name == "" {
		return nil, fmt.Errorf("%w: field 'nome' is required", ErrValidation)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: field 'categoria' is required", ErrValidation)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: 'prezzo' must be positive", ErrValidation)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := &models.MenuItem{
		Name:        name,
		Category:    category,
		Price:       req.Price,
		Available:   available,
		Description: req.Description,
	}
	return s.Repo.CreateMenuItem(ctx, item)
}

func (s *MenuService) Update(ctx context.Context, id uint, req transport.UpdateMenuItemRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)

	if req.Name == "" || req.Category == "" || req.Price <= 0 {
		return fmt.Errorf("%w: 'nome', 'categoria' and a positive 'prezzo' are required", ErrValidation)
	}

	return s.Repo.UpdateMenuItem(ctx, id, req)
}

// Disable is the DELETE behavior of the catalog: availability is flipped off,
// the row stays for historical order lines.
func (s *MenuService) Disable(ctx context.Context, id uint) error {
	return s.Repo.DisableMenuItem(ctx, id)
}

package repo

import (
	"context"

	"hamburgeria-backend/internal/models"
	"hamburgeria-backend/internal/transport"
)

// ListAvailableMenuItems returns only rows with available=true, newest first.
// The id tiebreak keeps same-timestamp rows in a stable order.
func (r *GormRepo) ListAvailableMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.DB.WithContext(ctx).
		Where("available = ?", true).
		Order("created_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	item := models.MenuItem{}
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateMenuItem inserts one row. Fields are selected explicitly so an
// explicit available=false survives gorm's zero-value/default-tag skip.
func (r *GormRepo) CreateMenuItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if err := r.DB.WithContext(ctx).
		Select("Name", "Category", "Price", "Available", "Description", "CreatedAt").
		Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateMenuItem always rewrites nome/categoria/prezzo; available and
// description only when the request carried them. A missing id is a silent
// zero-row no-op.
func (r *GormRepo) UpdateMenuItem(ctx context.Context, id uint, req transport.UpdateMenuItemRequest) error {
	updates := map[string]any{
		"nome":      req.Name,
		"categoria": req.Category,
		"prezzo":    req.Price,
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	return r.DB.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DisableMenuItem soft-disables a catalog row: historical order lines keep a
// valid reference and only the catalog listing stops surfacing it.
func (r *GormRepo) DisableMenuItem(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id = ?", id).
		Update("available", false).Error
}

// DeleteMenuItem hard-removes the row. Not reachable from the HTTP surface,
// which soft-disables; kept for operational cleanup of never-ordered items.
func (r *GormRepo) DeleteMenuItem(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.MenuItem{}, id).Error
}

package db

import (
	"fmt"

	"gorm.io/gorm"

	"hamburgeria-backend/internal/models"
)

// EnsureSchema brings the database up to the current shape. It is additive
// and idempotent: missing tables are created, columns added after the first
// release (orders.status, menu_items.available, menu_items.description) are
// added with safe defaults, nothing is ever dropped or rewritten. Runs on
// every process start; any failure here must abort startup.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.MenuItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	// Rows written before a column existed come back NULL on some dialects
	// even with a column default; normalize them once per start.
	if err := db.Model(&models.MenuItem{}).
		Where("available IS NULL").
		Update("available", true).Error; err != nil {
		return fmt.Errorf("backfill menu_items.available: %w", err)
	}
	if err := db.Model(&models.Order{}).
		Where("status IS NULL OR status = ''").
		Update("status", models.StatusPending).Error; err != nil {
		return fmt.Errorf("backfill orders.status: %w", err)
	}

	return nil
}

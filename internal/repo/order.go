package repo

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"hamburgeria-backend/internal/models"
	"hamburgeria-backend/internal/transport"
)

// OrderLine is a resolved (menu item, quantity) pair; quantities are
// validated by the service layer before they get here.
type OrderLine struct {
	MenuItemID uint
	Quantity   int
}

// CreateOrder persists one order plus its line rows, or nothing. Each line's
// menu item is resolved inside the transaction; its current price becomes the
// line's immutable snapshot and feeds the order total. Any missing menu item
// rolls the whole thing back. Duplicate menu item ids stay separate lines.
func (r *GormRepo) CreateOrder(ctx context.Context, lines []OrderLine) (uint, error) {
	var orderID uint

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total float64
		items := make([]models.OrderItem, 0, len(lines))

		for _, line := range lines {
			var item models.MenuItem
			if err := tx.First(&item, line.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: id %d", ErrMenuItemNotFound, line.MenuItemID)
				}
				return err
			}

			total += item.Price * float64(line.Quantity)
			items = append(items, models.OrderItem{
				MenuItemID: item.ID,
				Quantity:   line.Quantity,
				UnitPrice:  item.Price,
			})
		}

		order := models.Order{
			Total:  math.Round(total*100) / 100,
			Status: models.StatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// ListOrdersWithItems returns every order, newest first, each line annotated
// with the menu item's *current* name; only the unit price is frozen.
func (r *GormRepo) ListOrdersWithItems(ctx context.Context) ([]transport.OrderResponse, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	out := make([]transport.OrderResponse, 0, len(orders))
	if len(orders) == 0 {
		return out, nil
	}

	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	var rows []struct {
		OrderID    uint
		MenuItemID uint
		Name       string
		Quantity   int
		UnitPrice  float64
	}
	if err := r.DB.WithContext(ctx).
		Table("order_items").
		Select("order_items.order_id AS order_id, order_items.menu_item_id AS menu_item_id, menu_items.nome AS name, order_items.quantity AS quantity, order_items.prezzo_unitario AS unit_price").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("order_items.order_id IN ?", ids).
		Order("order_items.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	byOrder := make(map[uint][]transport.OrderItemResponse, len(orders))
	for _, row := range rows {
		byOrder[row.OrderID] = append(byOrder[row.OrderID], transport.OrderItemResponse{
			MenuItemID: row.MenuItemID,
			Name:       row.Name,
			Quantity:   row.Quantity,
			UnitPrice:  row.UnitPrice,
		})
	}

	for _, o := range orders {
		items := byOrder[o.ID]
		if items == nil {
			items = []transport.OrderItemResponse{}
		}
		out = append(out, transport.OrderResponse{
			ID:        o.ID,
			Total:     o.Total,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
			Items:     items,
		})
	}
	return out, nil
}

// UpdateOrderStatus is an unconditional overwrite; a missing id is a silent
// zero-row no-op.
func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id uint, status string) error {
	return r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// DeleteOrder removes the order and its lines in one transaction. The cascade
// is explicit rather than left to the FK so behavior does not depend on the
// dialect's foreign-key enforcement.
func (r *GormRepo) DeleteOrder(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}

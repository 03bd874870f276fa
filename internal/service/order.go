package service

import (
	"context"
	"fmt"
	"strings"

	"hamburgeria-backend/internal/repo"
	"hamburgeria-backend/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// Create normalizes the requested lines and hands them to the repository's
// order transaction. An empty list and non-positive quantities never reach
// the store; an omitted quantity means 1.
func (s *OrderService) Create(ctx context.Context, req transport.CreateOrderRequest) (uint, error) {
	if len(req.Items) == 0 {
		return 0, fmt.Errorf("%w: the order must contain at least one item", ErrValidation)
	}

	lines := make([]repo.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		if item.MenuItemID == 0 {
			return 0, fmt.Errorf("%w: 'menu_item_id' is required", ErrValidation)
		}
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		if quantity <= 0 {
			return 0, fmt.Errorf("%w: 'quantity' must be positive", ErrValidation)
		}
		lines = append(lines, repo.OrderLine{MenuItemID: item.MenuItemID, Quantity: quantity})
	}

	return s.Repo.CreateOrder(ctx, lines)
}

func (s *OrderService) ListWithItems(ctx context.Context) ([]transport.OrderResponse, error) {
	return s.Repo.ListOrdersWithItems(ctx)
}

// UpdateStatus accepts any non-empty string; statuses are free-form.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if strings.TrimSpace(status) == "" {
		return fmt.Errorf("%w: field 'status' is required", ErrValidation)
	}
	return s.Repo.UpdateOrderStatus(ctx, id, status)
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	return s.Repo.DeleteOrder(ctx, id)
}

package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hamburgeria-backend/internal/models"
)

func TestCreateOrderSnapshotsPricesAndTotal(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	burger := models.MenuItem{Name: "Burger", Category: "Main", Price: 8.5, Available: true}
	fries := models.MenuItem{Name: "Patatine", Category: "Contorni", Price: 3.5, Available: true}
	require.NoError(t, r.DB.Create(&burger).Error)
	require.NoError(t, r.DB.Create(&fries).Error)

	orderID, err := r.CreateOrder(ctx, []OrderLine{
		{MenuItemID: burger.ID, Quantity: 2},
		{MenuItemID: fries.ID, Quantity: 1},
	})
	require.NoError(t, err)
	require.NotZero(t, orderID)

	var order models.Order
	require.NoError(t, r.DB.First(&order, orderID).Error)
	require.Equal(t, 20.5, order.Total)
	require.Equal(t, models.StatusPending, order.Status)

	var lines []models.OrderItem
	require.NoError(t, r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&lines).Error)
	require.Len(t, lines, 2)
	require.Equal(t, 8.5, lines[0].UnitPrice)
	require.Equal(t, 2, lines[0].Quantity)
	require.Equal(t, 3.5, lines[1].UnitPrice)
}

func TestCreateOrderUnknownItemPersistsNothing(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	burger := models.MenuItem{Name: "Burger", Category: "Main", Price: 8.5, Available: true}
	require.NoError(t, r.DB.Create(&burger).Error)

	_, err := r.CreateOrder(ctx, []OrderLine{
		{MenuItemID: burger.ID, Quantity: 1},
		{MenuItemID: 9999, Quantity: 1},
	})
	require.ErrorIs(t, err, ErrMenuItemNotFound)

	var orders, items int64
	require.NoError(t, r.DB.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, r.DB.Model(&models.OrderItem{}).Count(&items).Error)
	require.Zero(t, orders)
	require.Zero(t, items)
}

func TestCreateOrderDuplicateLinesStaySeparate(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	burger := models.MenuItem{Name: "Burger", Category: "Main", Price: 8.5, Available: true}
	require.NoError(t, r.DB.Create(&burger).Error)

	orderID, err := r.CreateOrder(ctx, []OrderLine{
		{MenuItemID: burger.ID, Quantity: 1},
		{MenuItemID: burger.ID, Quantity: 3},
	})
	require.NoError(t, err)

	var lines []models.OrderItem
	require.NoError(t, r.DB.Where("order_id = ?", orderID).Find(&lines).Error)
	require.Len(t, lines, 2)

	var order models.Order
	require.NoError(t, r.DB.First(&order, orderID).Error)
	require.Equal(t, 34.0, order.Total)
}

func TestRepricingDoesNotRewriteHistory(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	burger := models.MenuItem{Name: "Burger", Category: "Main", Price: 8.5, Available: true}
	require.NoError(t, r.DB.Create(&burger).Error)

	orderID, err := r.CreateOrder(ctx, []OrderLine{{MenuItemID: burger.ID, Quantity: 2}})
	require.NoError(t, err)

	require.NoError(t, r.DB.Model(&models.MenuItem{}).Where("id = ?", burger.ID).Update("prezzo", 99).Error)

	var order models.Order
	require.NoError(t, r.DB.First(&order, orderID).Error)
	require.Equal(t, 17.0, order.Total)

	var line models.OrderItem
	require.NoError(t, r.DB.Where("order_id = ?", orderID).First(&line).Error)
	require.Equal(t, 8.5, line.UnitPrice)
}

func TestListOrdersWithItemsShowsCurrentName(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	burger := models.MenuItem{Name: "Burger", Category: "Main", Price: 8.5, Available: true}
	require.NoError(t, r.DB.Create(&burger).Error)

	first := models.Order{Total: 8.5, Status: models.StatusPending, CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	second := models.Order{Total: 17, Status: "Completed", CreatedAt: time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)}
	require.NoError(t, r.DB.Create(&first).Error)
	require.NoError(t, r.DB.Create(&second).Error)
	require.NoError(t, r.DB.Create(&models.OrderItem{OrderID: first.ID, MenuItemID: burger.ID, Quantity: 1, UnitPrice: 8.5}).Error)
	require.NoError(t, r.DB.Create(&models.OrderItem{OrderID: second.ID, MenuItemID: burger.ID, Quantity: 2, UnitPrice: 8.5}).Error)

	// Rename after the fact: listings must show the current name, frozen price.
	require.NoError(t, r.DB.Model(&models.MenuItem{}).Where("id = ?", burger.ID).Update("nome", "Super Burger").Error)

	orders, err := r.ListOrdersWithItems(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Newest first, all statuses included.
	require.Equal(t, second.ID, orders[0].ID)
	require.Equal(t, "Completed", orders[0].Status)
	require.Equal(t, first.ID, orders[1].ID)

	require.Len(t, orders[0].Items, 1)
	require.Equal(t, "Super Burger", orders[0].Items[0].Name)
	require.Equal(t, 8.5, orders[0].Items[0].UnitPrice)
	require.Equal(t, 2, orders[0].Items[0].Quantity)
}

func TestUpdateOrderStatusAndNoOp(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	order := models.Order{Total: 1, Status: models.StatusPending}
	require.NoError(t, r.DB.Create(&order).Error)

	require.NoError(t, r.UpdateOrderStatus(ctx, order.ID, "Completed"))

	var got models.Order
	require.NoError(t, r.DB.First(&got, order.ID).Error)
	require.Equal(t, "Completed", got.Status)

	// Missing id: silent zero-row no-op.
	require.NoError(t, r.UpdateOrderStatus(ctx, 9999, "Completed"))
}

func TestDeleteOrderCascadesLines(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	burger := models.MenuItem{Name: "Burger", Category: "Main", Price: 8.5, Available: true}
	require.NoError(t, r.DB.Create(&burger).Error)

	orderID, err := r.CreateOrder(ctx, []OrderLine{{MenuItemID: burger.ID, Quantity: 1}})
	require.NoError(t, err)

	require.NoError(t, r.DeleteOrder(ctx, orderID))

	var orders, items int64
	require.NoError(t, r.DB.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, r.DB.Model(&models.OrderItem{}).Count(&items).Error)
	require.Zero(t, orders)
	require.Zero(t, items)

	// The referenced menu item is untouched.
	var count int64
	require.NoError(t, r.DB.Model(&models.MenuItem{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"hamburgeria-backend/internal/events"
	"hamburgeria-backend/internal/logging"
	"hamburgeria-backend/internal/repo"
	"hamburgeria-backend/internal/service"
	"hamburgeria-backend/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *events.Producer
}

func (h *OrderHTTP) publish(c echo.Context, id uint, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	key := strconv.FormatUint(uint64(id), 10)
	if err := h.Producer.PublishEvent(ctx, events.OrderTopic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_orders")

	orders, err := h.Svc.ListWithItems(ctx)
	if err != nil {
		l.Error("list_orders_error", "status", 500, "reason", "cannot list orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list orders")
	}

	l.Info("list_orders_success")
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	orderID, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_order_error", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		// Includes a line referencing an unknown menu item: the transaction
		// already rolled back, nothing was persisted.
		if errors.Is(err, repo.ErrMenuItemNotFound) {
			l.Error("create_order_error", "status", 500, "reason", "order references unknown menu item", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot process order: unknown menu item")
		}
		l.Error("create_order_error", "status", 500, "reason", "cannot create order", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create order")
	}

	h.publish(c, orderID, map[string]any{
		"type":    "order_created",
		"orderID": orderID,
	})

	l.Info("create_order_success", "order_id", orderID)
	return c.JSON(http.StatusCreated, transport.IDResponse{Message: "order created", ID: orderID})
}

func (h *OrderHTTP) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_order")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_order_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("update_order_error", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("update_order_error", "status", 500, "reason", "cannot update order status", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update order status")
	}

	h.publish(c, id, map[string]any{
		"type":    "order_status_updated",
		"orderID": id,
		"status":  req.Status,
	})

	l.Info("update_order_success", "order_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "order status updated"})
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete_order")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_order_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		l.Error("delete_order_error", "status", 500, "reason", "cannot delete order", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete order")
	}

	h.publish(c, id, map[string]any{
		"type":    "order_deleted",
		"orderID": id,
	})

	l.Info("delete_order_success", "order_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "order deleted"})
}

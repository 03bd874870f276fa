package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"hamburgeria-backend/internal/events"
	"hamburgeria-backend/internal/logging"
	"hamburgeria-backend/internal/models"
	"hamburgeria-backend/internal/search"
	"hamburgeria-backend/internal/service"
	"hamburgeria-backend/internal/transport"
)

type MenuHTTP struct {
	Svc      *service.MenuService
	Producer *events.Producer
	ES       *elasticsearch.Client
}

func (h *MenuHTTP) publish(c echo.Context, id uint, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	key := strconv.FormatUint(uint64(id), 10)
	if err := h.Producer.PublishEvent(ctx, events.MenuTopic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *MenuHTTP) index(c echo.Context, item *models.MenuItem) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.IndexMenuItem(ctx, h.ES, item); err != nil {
		logging.FromContext(c.Request().Context()).Error("es index error", "error", err)
	}
}

func (h *MenuHTTP) unindex(c echo.Context, id uint) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.RemoveMenuItem(ctx, h.ES, id); err != nil {
		logging.FromContext(c.Request().Context()).Error("es remove error", "error", err)
	}
}

func (h *MenuHTTP) ListMenuItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.list_menu_items")

	items, err := h.Svc.ListAvailable(ctx)
	if err != nil {
		l.Error("list_menu_items_error", "status", 500, "reason", "cannot list menu items", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list menu items")
	}

	l.Info("list_menu_items_success")
	return c.JSON(http.StatusOK, items)
}

func (h *MenuHTTP) CreateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.create_menu_item")

	var req transport.CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_menu_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_menu_item_error", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_menu_item_error", "status", 500, "reason", "cannot add menu item", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add menu item")
	}

	h.index(c, item)
	h.publish(c, item.ID, map[string]any{
		"type":   "menu_item_created",
		"itemID": item.ID,
		"nome":   item.Name,
	})

	l.Info("create_menu_item_success", "item_id", item.ID)
	return c.JSON(http.StatusCreated, transport.IDResponse{Message: "menu item created", ID: item.ID})
}

func (h *MenuHTTP) UpdateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.update_menu_item")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_menu_item_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.UpdateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_menu_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Update(ctx, id, req); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("update_menu_item_error", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("update_menu_item_error", "status", 500, "reason", "cannot update menu item", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update menu item")
	}

	// Re-sync the search document with whatever the row looks like now; a
	// zero-row no-op update has nothing to sync.
	if item, err := h.Svc.Get(ctx, id); err == nil {
		if item.Available {
			h.index(c, item)
		} else {
			h.unindex(c, item.ID)
		}
	}
	h.publish(c, id, map[string]any{
		"type":   "menu_item_updated",
		"itemID": id,
	})

	l.Info("update_menu_item_success", "item_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "menu item updated"})
}

func (h *MenuHTTP) DeleteMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.delete_menu_item")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_menu_item_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	if err := h.Svc.Disable(ctx, id); err != nil {
		l.Error("delete_menu_item_error", "status", 500, "reason", "cannot disable menu item", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot disable menu item")
	}

	h.unindex(c, id)
	h.publish(c, id, map[string]any{
		"type":   "menu_item_disabled",
		"itemID": id,
	})

	l.Info("delete_menu_item_success", "item_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "menu item disabled"})
}

func (h *MenuHTTP) SearchMenuItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.search_menu_items")

	if h.ES == nil {
		l.Warn("search_menu_items_error", "status", 503, "reason", "search unavailable")
		return echo.NewHTTPError(http.StatusServiceUnavailable, "search unavailable")
	}

	q := c.QueryParam("q")
	if q == "" {
		l.Warn("search_menu_items_error", "status", 400, "reason", "missing query")
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter 'q' is required")
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), defaultPageSize)
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}

	total, items, err := search.Search(ctx, h.ES, q, (page-1)*size, size)
	if err != nil {
		l.Error("search_menu_items_error", "status", 500, "reason", "search failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	l.Info("search_menu_items_success", "total", total)
	return c.JSON(http.StatusOK, echo.Map{"total": total, "items": items})
}

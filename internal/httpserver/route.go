package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const defaultPageSize = 20

type Deps struct {
	MenuHandler  *MenuHTTP
	OrderHandler *OrderHTTP

	// StoreAvailable is false when the startup database connection failed;
	// every data route then short-circuits with 503.
	StoreAvailable bool
}

// RequireStore guards data routes when the process came up without a working
// database connection.
func RequireStore(available bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !available {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
			}
			return next(c)
		}
	}
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "hamburgeria API running"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	guard := RequireStore(d.StoreAvailable)

	menu := e.Group("/menu-items", guard)
	menu.GET("", d.MenuHandler.ListMenuItems)
	menu.GET("/search", d.MenuHandler.SearchMenuItems)
	menu.POST("", d.MenuHandler.CreateMenuItem)
	menu.PUT("/:id", d.MenuHandler.UpdateMenuItem)
	menu.DELETE("/:id", d.MenuHandler.DeleteMenuItem)

	orders := e.Group("/orders", guard)
	orders.GET("", d.OrderHandler.ListOrders)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.PUT("/:id", d.OrderHandler.UpdateOrder)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

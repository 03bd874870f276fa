package transport

import "time"

// Wire field names are the legacy Italian ones; see internal/models.

type CreateMenuItemRequest struct {
	Name        string  `json:"nome"`
	Category    string  `json:"categoria"`
	Price       float64 `json:"prezzo"`
	Available   *bool   `json:"available"`
	Description *string `json:"description"`
}

// UpdateMenuItemRequest always rewrites nome/categoria/prezzo; available and
// description are pointers so an omitted field is left untouched instead of
// being reset.
type UpdateMenuItemRequest struct {
	Name        string  `json:"nome"`
	Category    string  `json:"categoria"`
	Price       float64 `json:"prezzo"`
	Available   *bool   `json:"available"`
	Description *string `json:"description"`
}

type OrderLine struct {
	MenuItemID uint `json:"menu_item_id"`
	// Quantity defaults to 1 when omitted; explicit non-positive values are
	// rejected.
	Quantity *int `json:"quantity"`
}

type CreateOrderRequest struct {
	Items []OrderLine `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type IDResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

type OrderItemResponse struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"nome"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"prezzo_unitario"`
}

type OrderResponse struct {
	ID        uint                `json:"id"`
	Total     float64             `json:"totale"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	Items     []OrderItemResponse `json:"items"`
}

package models

import "time"

// Column names follow the legacy schema: nome/categoria/prezzo on menu_items,
// totale on orders, prezzo_unitario on order_items. Wire field names match.

const StatusPending = "Pending"

type MenuItem struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"                  json:"id"`
	Name        string    `gorm:"column:nome;size:100;not null"             json:"nome"`
	Category    string    `gorm:"column:categoria;size:50;not null"         json:"categoria"`
	Price       float64   `gorm:"column:prezzo;type:decimal(10,2);not null" json:"prezzo"`
	Available   bool      `gorm:"not null;default:true"                     json:"available"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"                  json:"id"`
	Total     float64     `gorm:"column:totale;type:decimal(10,2);not null" json:"totale"`
	Status    string      `gorm:"size:50;not null;default:'Pending'"        json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}

// OrderItem keeps a non-owning reference to its menu item: the row survives
// renames and soft-disables, and UnitPrice is the price frozen at order time.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"                           json:"id"`
	OrderID    uint    `gorm:"index;not null"                                     json:"order_id"`
	MenuItemID uint    `gorm:"not null"                                           json:"menu_item_id"`
	Quantity   int     `gorm:"not null;check:quantity > 0"                        json:"quantity"`
	UnitPrice  float64 `gorm:"column:prezzo_unitario;type:decimal(10,2);not null" json:"prezzo_unitario"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID;constraint:OnDelete:RESTRICT" json:"-"`
}

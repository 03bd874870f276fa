package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrMenuItemNotFound reports an order line referencing a menu item id that
// does not exist. Raised inside the order-creation transaction, so by the
// time a caller sees it nothing has been persisted.
var ErrMenuItemNotFound = errors.New("menu item not found")

type GormRepo struct {
	DB *gorm.DB
}

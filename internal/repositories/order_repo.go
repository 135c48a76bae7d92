package repositories

import (
	"souq/internal/models"
)

// OrderRepository defines the interface for order data access.
//
// Create persists the order and its items as a single atomic unit; a
// tracking-key collision surfaces as gorm.ErrDuplicatedKey so the caller can
// regenerate and retry.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByKey(orderKey string) (*models.Order, error)
	GetByID(id string) (*models.Order, error)
	UpdateStatus(id string, status models.OrderStatus) error
	GetAll(sort string) ([]models.Order, error)
}

// Order listing sort orders.
const (
	OrderSortNewest = "newest"
	OrderSortOldest = "oldest"
)

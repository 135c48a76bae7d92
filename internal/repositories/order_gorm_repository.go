package repositories

import (
	"errors"
	"fmt"

	"souq/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create persists the order with its items in one transaction: either all
// rows commit or none do. Duplicate order keys come back unwrapped as
// gorm.ErrDuplicatedKey for the retry loop upstream.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("order key %s already exists: %w", order.OrderKey, gorm.ErrDuplicatedKey)
		}
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByKey retrieves an order with its items by tracking key. The key is
// expected to be normalized (uppercase, trimmed) by the caller.
func (r *GORMOrderRepository) GetByKey(orderKey string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "order_key = ?", orderKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with key %s: %w", orderKey, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to get order by key %s: %w", orderKey, err)
	}
	return &order, nil
}

// GetByID retrieves an order with its items by ID.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// UpdateStatus sets the status of an order.
func (r *GORMOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
	}
	return nil
}

// GetAll returns all orders with their items, newest first unless the oldest
// sort is requested.
func (r *GORMOrderRepository) GetAll(sort string) ([]models.Order, error) {
	order := "created_at DESC"
	if sort == OrderSortOldest {
		order = "created_at ASC"
	}

	var orders []models.Order
	if err := r.db.Preload("Items").Order(order).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

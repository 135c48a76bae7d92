package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"souq/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MockOrderRepository is an in-memory implementation of OrderRepository. It
// enforces the same order-key uniqueness the database would, returning
// gorm.ErrDuplicatedKey on collisions.
type MockOrderRepository struct {
	orders map[string]models.Order
	keys   map[string]string // order key -> order ID
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
		keys:   make(map[string]string),
	}
}

// Create adds a new order with its items.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.keys[order.OrderKey]; exists {
		return fmt.Errorf("order key %s already exists: %w", order.OrderKey, gorm.ErrDuplicatedKey)
	}
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	r.keys[order.OrderKey] = order.ID
	return nil
}

// GetByKey returns an order by its tracking key.
func (r *MockOrderRepository) GetByKey(orderKey string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.keys[orderKey]
	if !ok {
		return nil, fmt.Errorf("order with key %s: %w", orderKey, ErrOrderNotFound)
	}
	order := r.orders[id]
	return &order, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
	}
	return &order, nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// GetAll returns all orders, newest first unless the oldest sort is
// requested.
func (r *MockOrderRepository) GetAll(sortOrder string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	sort.Slice(orderList, func(i, j int) bool {
		if sortOrder == OrderSortOldest {
			return orderList[i].CreatedAt.Before(orderList[j].CreatedAt)
		}
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	return orderList, nil
}

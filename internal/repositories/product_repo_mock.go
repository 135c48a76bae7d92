package repositories

import (
	"fmt"
	"sort"
	"sync"

	"souq/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository
// for tests that do not need a database.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// List returns products matching the filter.
func (r *MockProductRepository) List(filter ProductListFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.AvailableOnly && !p.IsAvailable {
			continue
		}
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		productList = append(productList, p)
	}

	switch filter.SortBy {
	case SortRating:
		sort.Slice(productList, func(i, j int) bool { return productList[i].Rating > productList[j].Rating })
	case SortPriceAsc:
		sort.Slice(productList, func(i, j int) bool { return productList[i].Price < productList[j].Price })
	case SortPriceDesc:
		sort.Slice(productList, func(i, j int) bool { return productList[i].Price > productList[j].Price })
	default:
		sort.Slice(productList, func(i, j int) bool { return productList[i].CreatedAt.After(productList[j].CreatedAt) })
	}

	if filter.Limit > 0 && len(productList) > filter.Limit {
		productList = productList[:filter.Limit]
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, ErrProductNotFound)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product %s: %w", product.ID, ErrProductNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, ErrProductNotFound)
	}
	delete(r.products, id)
	return nil
}

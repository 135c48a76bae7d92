package repositories

import (
	"souq/internal/models"
)

// Product list sort orders accepted by the storefront.
const (
	SortNewest    = "createdAt"
	SortRating    = "rating"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// ProductListFilter narrows and orders a product listing. A zero filter
// lists everything, newest first.
type ProductListFilter struct {
	CategoryID    string
	SortBy        string
	Limit         int
	AvailableOnly bool
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}

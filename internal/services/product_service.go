package services

import (
	"errors"
	"fmt"

	"souq/internal/models"
	"souq/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	products   repositories.ProductRepository
	categories repositories.CategoryRepository
}

// NewProductService creates a new ProductService.
func NewProductService(products repositories.ProductRepository, categories repositories.CategoryRepository) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
	}
}

// ListProducts returns the storefront listing: available products only,
// optionally narrowed to a category slug, in the requested sort order. An
// unknown category slug yields an empty listing, not an error.
func (s *ProductService) ListProducts(categorySlug, sortBy string, limit int) ([]models.Product, error) {
	filter := repositories.ProductListFilter{
		SortBy:        sortBy,
		Limit:         limit,
		AvailableOnly: true,
	}

	if categorySlug != "" {
		category, err := s.categories.GetBySlug(categorySlug)
		if err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return []models.Product{}, nil
			}
			return nil, fmt.Errorf("failed to resolve category %s: %w", categorySlug, err)
		}
		filter.CategoryID = category.ID
	}

	return s.products.List(filter)
}

// ListAllProducts returns every product regardless of availability, for the
// backoffice.
func (s *ProductService) ListAllProducts() ([]models.Product, error) {
	return s.products.List(repositories.ProductListFilter{})
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.products.GetByID(id)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.products.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.products.Update(product)
}

// DeleteProduct deletes a product by its ID. Existing order items keep their
// reference; a dangling product on a historical order is an accepted state.
func (s *ProductService) DeleteProduct(id string) error {
	return s.products.Delete(id)
}

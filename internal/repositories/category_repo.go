package repositories

import "souq/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id string) error
}

// CompanyRepository defines the interface for company (brand) data access.
type CompanyRepository interface {
	GetAll() ([]models.Company, error)
	GetByID(id string) (*models.Company, error)
	GetBySlug(slug string) (*models.Company, error)
	Create(company *models.Company) error
	Update(company *models.Company) error
	Delete(id string) error
}

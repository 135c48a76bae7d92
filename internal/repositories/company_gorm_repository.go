package repositories

import (
	"errors"
	"fmt"

	"souq/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCompanyRepository is a GORM implementation of CompanyRepository.
type GORMCompanyRepository struct {
	db *gorm.DB
}

// NewGORMCompanyRepository creates a new instance of GORMCompanyRepository.
func NewGORMCompanyRepository(db *gorm.DB) *GORMCompanyRepository {
	return &GORMCompanyRepository{
		db: db,
	}
}

// GetAll retrieves all companies in display order.
func (r *GORMCompanyRepository) GetAll() ([]models.Company, error) {
	var companies []models.Company
	if err := r.db.Order("sorting ASC, name_en ASC").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// GetByID retrieves a company by its ID.
func (r *GORMCompanyRepository) GetByID(id string) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("company %s: %w", id, ErrCompanyNotFound)
		}
		return nil, fmt.Errorf("failed to get company by ID %s: %w", id, err)
	}
	return &company, nil
}

// GetBySlug retrieves a company by its URL slug.
func (r *GORMCompanyRepository) GetBySlug(slug string) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("company slug %s: %w", slug, ErrCompanyNotFound)
		}
		return nil, fmt.Errorf("failed to get company by slug %s: %w", slug, err)
	}
	return &company, nil
}

// Create creates a new company.
func (r *GORMCompanyRepository) Create(company *models.Company) error {
	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	if err := r.db.Create(company).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

// Update updates an existing company.
func (r *GORMCompanyRepository) Update(company *models.Company) error {
	res := r.db.Save(company)
	if res.Error != nil {
		return fmt.Errorf("failed to update company: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("company %s: %w", company.ID, ErrCompanyNotFound)
	}
	return nil
}

// Delete deletes a company by its ID.
func (r *GORMCompanyRepository) Delete(id string) error {
	res := r.db.Delete(&models.Company{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete company: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("company %s: %w", id, ErrCompanyNotFound)
	}
	return nil
}

package services

import (
	"souq/internal/models"
	"souq/internal/repositories"
)

// CategoryService handles category management.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) ListCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

func (s *CategoryService) CreateCategory(category *models.Category) error {
	return s.repo.Create(category)
}

func (s *CategoryService) UpdateCategory(category *models.Category) error {
	return s.repo.Update(category)
}

func (s *CategoryService) DeleteCategory(id string) error {
	return s.repo.Delete(id)
}

// CompanyService handles company (brand) management.
type CompanyService struct {
	repo repositories.CompanyRepository
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(repo repositories.CompanyRepository) *CompanyService {
	return &CompanyService{repo: repo}
}

func (s *CompanyService) ListCompanies() ([]models.Company, error) {
	return s.repo.GetAll()
}

func (s *CompanyService) GetCompanyByID(id string) (*models.Company, error) {
	return s.repo.GetByID(id)
}

func (s *CompanyService) CreateCompany(company *models.Company) error {
	return s.repo.Create(company)
}

func (s *CompanyService) UpdateCompany(company *models.Company) error {
	return s.repo.Update(company)
}

func (s *CompanyService) DeleteCompany(id string) error {
	return s.repo.Delete(id)
}

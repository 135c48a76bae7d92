package repositories

import (
	"fmt"
	"sort"
	"sync"

	"souq/internal/models"

	"github.com/google/uuid"
)

// MockCategoryRepository is an in-memory implementation of CategoryRepository
// for tests that do not need a database.
type MockCategoryRepository struct {
	categories map[string]models.Category
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[string]models.Category),
	}
}

// GetAll returns all categories in display order.
func (r *MockCategoryRepository) GetAll() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Sorting != list[j].Sorting {
			return list[i].Sorting < list[j].Sorting
		}
		return list[i].NameEn < list[j].NameEn
	})
	return list, nil
}

// GetByID returns a category by its ID.
func (r *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, fmt.Errorf("category %s: %w", id, ErrCategoryNotFound)
	}
	return &category, nil
}

// GetBySlug returns a category by its slug.
func (r *MockCategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.Slug == slug {
			category := c
			return &category, nil
		}
	}
	return nil, fmt.Errorf("category %s: %w", slug, ErrCategoryNotFound)
}

// Create adds a new category.
func (r *MockCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.categories[category.ID] = *category
	return nil
}

// Update modifies an existing category.
func (r *MockCategoryRepository) Update(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[category.ID]; !ok {
		return fmt.Errorf("category %s: %w", category.ID, ErrCategoryNotFound)
	}
	r.categories[category.ID] = *category
	return nil
}

// Delete removes a category by its ID.
func (r *MockCategoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return fmt.Errorf("category %s: %w", id, ErrCategoryNotFound)
	}
	delete(r.categories, id)
	return nil
}

// MockCompanyRepository is an in-memory implementation of CompanyRepository
// for tests that do not need a database.
type MockCompanyRepository struct {
	companies map[string]models.Company
	mu        sync.RWMutex
}

// NewMockCompanyRepository creates a new instance of MockCompanyRepository.
func NewMockCompanyRepository() *MockCompanyRepository {
	return &MockCompanyRepository{
		companies: make(map[string]models.Company),
	}
}

// GetAll returns all companies in display order.
func (r *MockCompanyRepository) GetAll() ([]models.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Company, 0, len(r.companies))
	for _, c := range r.companies {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Sorting != list[j].Sorting {
			return list[i].Sorting < list[j].Sorting
		}
		return list[i].NameEn < list[j].NameEn
	})
	return list, nil
}

// GetByID returns a company by its ID.
func (r *MockCompanyRepository) GetByID(id string) (*models.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	company, ok := r.companies[id]
	if !ok {
		return nil, fmt.Errorf("company %s: %w", id, ErrCompanyNotFound)
	}
	return &company, nil
}

// GetBySlug returns a company by its slug.
func (r *MockCompanyRepository) GetBySlug(slug string) (*models.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.companies {
		if c.Slug == slug {
			company := c
			return &company, nil
		}
	}
	return nil, fmt.Errorf("company %s: %w", slug, ErrCompanyNotFound)
}

// Create adds a new company.
func (r *MockCompanyRepository) Create(company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	r.companies[company.ID] = *company
	return nil
}

// Update modifies an existing company.
func (r *MockCompanyRepository) Update(company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.companies[company.ID]; !ok {
		return fmt.Errorf("company %s: %w", company.ID, ErrCompanyNotFound)
	}
	r.companies[company.ID] = *company
	return nil
}

// Delete removes a company by its ID.
func (r *MockCompanyRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.companies[id]; !ok {
		return fmt.Errorf("company %s: %w", id, ErrCompanyNotFound)
	}
	delete(r.companies, id)
	return nil
}

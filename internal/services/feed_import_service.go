package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"souq/internal/feed"
	"souq/internal/models"
	"souq/internal/repositories"
)

// FeedImportService seeds the catalog from normalized feed records. Each
// record's category and brand are created on first sight; products are
// upserted by their feed ID so re-imports refresh price and availability.
type FeedImportService struct {
	products   repositories.ProductRepository
	categories repositories.CategoryRepository
	companies  repositories.CompanyRepository
}

// NewFeedImportService creates a new FeedImportService.
func NewFeedImportService(products repositories.ProductRepository, categories repositories.CategoryRepository, companies repositories.CompanyRepository) *FeedImportService {
	return &FeedImportService{
		products:   products,
		categories: categories,
		companies:  companies,
	}
}

// Import loads records into the catalog and returns how many products were
// written. A record that fails is logged and skipped; the rest still import.
func (s *FeedImportService) Import(records []feed.Record) (int, error) {
	imported := 0
	for _, record := range records {
		if err := s.importRecord(record); err != nil {
			log.Printf("Skipping feed record %s (%s): %v", record.ID, record.NameEn, err)
			continue
		}
		imported++
	}
	return imported, nil
}

func (s *FeedImportService) importRecord(record feed.Record) error {
	category, err := s.ensureCategory(record.CategoryName, record.CategorySlug)
	if err != nil {
		return err
	}
	company, err := s.ensureCompany(record.BrandName, record.BrandSlug)
	if err != nil {
		return err
	}

	product := models.Product{
		ID:            record.ID,
		NameEn:        record.NameEn,
		NameAr:        record.NameAr,
		Price:         record.Price,
		OriginalPrice: record.OriginalPrice,
		Images:        strings.Join(record.Images, "\n"),
		Rating:        record.Rating,
		IsAvailable:   record.InStock,
		MaxQuantity:   100,
		Tags:          strings.Join(record.Tags, ","),
		CategoryID:    category.ID,
		CompanyID:     company.ID,
	}
	if record.DiscountPercent > 0 {
		product.DiscountType = models.DiscountPercentage
		product.DiscountValue = record.DiscountPercent
	} else {
		product.DiscountType = models.DiscountNone
	}

	existing, err := s.products.GetByID(record.ID)
	switch {
	case err == nil:
		// Keep any backoffice edits to descriptions; the feed refreshes the
		// volatile fields.
		existing.Price = product.Price
		existing.OriginalPrice = product.OriginalPrice
		existing.IsAvailable = product.IsAvailable
		existing.Rating = product.Rating
		existing.Images = product.Images
		existing.DiscountType = product.DiscountType
		existing.DiscountValue = product.DiscountValue
		return s.products.Update(existing)
	case errors.Is(err, repositories.ErrProductNotFound):
		return s.products.Create(&product)
	default:
		return fmt.Errorf("failed to look up product %s: %w", record.ID, err)
	}
}

func (s *FeedImportService) ensureCategory(name, slug string) (*models.Category, error) {
	category, err := s.categories.GetBySlug(slug)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to look up category %s: %w", slug, err)
	}

	created := &models.Category{NameEn: name, NameAr: name, Slug: slug}
	if err := s.categories.Create(created); err != nil {
		return nil, fmt.Errorf("failed to create category %s: %w", slug, err)
	}
	return created, nil
}

func (s *FeedImportService) ensureCompany(name, slug string) (*models.Company, error) {
	company, err := s.companies.GetBySlug(slug)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, repositories.ErrCompanyNotFound) {
		return nil, fmt.Errorf("failed to look up company %s: %w", slug, err)
	}

	created := &models.Company{NameEn: name, NameAr: name, Slug: slug}
	if err := s.companies.Create(created); err != nil {
		return nil, fmt.Errorf("failed to create company %s: %w", slug, err)
	}
	return created, nil
}

package models

import "gorm.io/gorm"

// DiscountType describes how a product's displayed discount is computed.
// It is catalog metadata, consumed at render time, never applied to totals.
type DiscountType string

const (
	DiscountNone       DiscountType = "NONE"
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

// Product represents a product in the catalog. Localized fields are
// normalized at ingestion; optional fields are plain zero values here.
type Product struct {
	ID            string       `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,max=36"`
	NameEn        string       `json:"name_en" validate:"required,min=2,max=200"`
	NameAr        string       `json:"name_ar" validate:"omitempty,max=200"`
	DescriptionEn string       `json:"description_en" validate:"omitempty,max=2000"`
	DescriptionAr string       `json:"description_ar" validate:"omitempty,max=2000"`
	Price         float64      `json:"price" validate:"required,gt=0"`
	OriginalPrice float64      `json:"original_price" validate:"omitempty,gte=0"`
	DiscountType  DiscountType `json:"discount_type" gorm:"type:varchar(20);default:NONE" validate:"omitempty,oneof=NONE PERCENTAGE FIXED"`
	DiscountValue float64      `json:"discount_value" validate:"gte=0"`
	Images        string       `json:"images"` // newline-separated image URLs
	Rating        float64      `json:"rating" validate:"gte=0,lte=5"`
	IsAvailable   bool         `json:"is_available" gorm:"default:true"`
	MaxQuantity   int          `json:"max_quantity" gorm:"default:100" validate:"gte=0"`
	Tags          string       `json:"tags"` // comma-separated labels from the feed
	CategoryID    string       `json:"category_id" gorm:"type:varchar(36);index"`
	CompanyID     string       `json:"company_id" gorm:"type:varchar(36);index"`
	gorm.Model    // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

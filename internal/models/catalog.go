package models

import "gorm.io/gorm"

// Category groups products in the storefront navigation.
type Category struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	NameEn     string `json:"name_en" validate:"required,min=2,max=100"`
	NameAr     string `json:"name_ar" validate:"omitempty,max=100"`
	Slug       string `json:"slug" gorm:"uniqueIndex;type:varchar(190)" validate:"required,max=190"`
	Image      string `json:"image"`
	Sorting    int    `json:"sorting"`
	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Company is a brand/manufacturer products can belong to.
type Company struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	NameEn     string `json:"name_en" validate:"required,min=2,max=100"`
	NameAr     string `json:"name_ar" validate:"omitempty,max=100"`
	Slug       string `json:"slug" gorm:"uniqueIndex;type:varchar(190)" validate:"required,max=190"`
	Image      string `json:"image"`
	Sorting    int    `json:"sorting"`
	gorm.Model
}

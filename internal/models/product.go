package models

import (
	"fmt"
	"time"
)

// ProductCategory is the closed set of listing categories.
type ProductCategory string

const (
	CategoryTextbooks      ProductCategory = "textbooks"
	CategoryNovels         ProductCategory = "novels"
	CategoryStationery     ProductCategory = "stationery"
	CategoryElectronics    ProductCategory = "electronics"
	CategoryStudyMaterials ProductCategory = "study-materials"
	CategoryOther          ProductCategory = "other"
)

// Valid reports whether the category is one of the known values.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryTextbooks, CategoryNovels, CategoryStationery,
		CategoryElectronics, CategoryStudyMaterials, CategoryOther:
		return true
	}
	return false
}

// ProductCondition is the closed set of item conditions.
type ProductCondition string

const (
	ConditionNew     ProductCondition = "new"
	ConditionLikeNew ProductCondition = "like-new"
	ConditionGood    ProductCondition = "good"
	ConditionFair    ProductCondition = "fair"
	ConditionPoor    ProductCondition = "poor"
)

// Valid reports whether the condition is one of the known values.
func (c ProductCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// ProductStatus is the listing state. Any state is reachable from any state.
type ProductStatus string

const (
	StatusAvailable ProductStatus = "available"
	StatusSold      ProductStatus = "sold"
	StatusReserved  ProductStatus = "reserved"
)

// Valid reports whether the status is one of the known values.
func (s ProductStatus) Valid() bool {
	return s == StatusAvailable || s == StatusSold || s == StatusReserved
}

// Product is a marketplace listing. Seller name/college/phone are denormalized
// snapshots taken at listing time, not live references.
type Product struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Price         float64          `json:"price"` // Non-negative
	Category      ProductCategory  `json:"category"`
	Condition     ProductCondition `json:"condition"`
	Images        []string         `json:"images"`
	SellerID      string           `json:"sellerId"`
	SellerName    string           `json:"sellerName"`
	SellerCollege string           `json:"sellerCollege"`
	SellerPhone   string           `json:"sellerPhone,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"` // Never before CreatedAt
	Status        ProductStatus    `json:"status"`
	Tags          []string         `json:"tags"`
}

// Validate rejects records whose closed enums or price are out of range.
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product: empty id")
	}
	if p.Price < 0 {
		return fmt.Errorf("product %s: negative price %v", p.ID, p.Price)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
	}
	if !p.Condition.Valid() {
		return fmt.Errorf("product %s: unknown condition %q", p.ID, p.Condition)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("product %s: unknown status %q", p.ID, p.Status)
	}
	return nil
}

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Category    *ProductCategory
	Condition   *ProductCondition
	Images      *[]string
	Status      *ProductStatus
	Tags        *[]string
	SellerPhone *string
}

// ProductFilter narrows the public browse view. Absent fields (zero values,
// nil price bounds) add no constraint; all supplied predicates are AND-combined.
type ProductFilter struct {
	Category  ProductCategory
	Condition ProductCondition
	MinPrice  *float64 // Inclusive
	MaxPrice  *float64 // Inclusive
	College   string
	Search    string // Case-insensitive substring over title, description, tags
}

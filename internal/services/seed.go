package services

import (
	"time"

	"github.com/campusmarket/marketstore/internal/models"
)

// DefaultCatalog returns the demo listings installed on an empty marketplace
// so the browse view is never blank on first run.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Title:         "Calculus: Early Transcendentals",
			Description:   "Stewart's Calculus textbook, 8th edition. Great condition with minimal highlighting.",
			Price:         120,
			Category:      models.CategoryTextbooks,
			Condition:     models.ConditionGood,
			Images:        []string{"/calculus-textbook.png"},
			SellerID:      "demo-user-1",
			SellerName:    "Sarah Johnson",
			SellerCollege: "MIT",
			SellerPhone:   "+1 (555) 123-4567",
			CreatedAt:     time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			Status:        models.StatusAvailable,
			Tags:          []string{"mathematics", "calculus", "stewart"},
		},
		{
			ID:            "2",
			Title:         `MacBook Pro 13" (2021)`,
			Description:   "Excellent condition MacBook Pro with M1 chip. Perfect for students. Includes charger and original box.",
			Price:         800,
			Category:      models.CategoryElectronics,
			Condition:     models.ConditionLikeNew,
			Images:        []string{"/macbook-pro-laptop.png"},
			SellerID:      "demo-user-2",
			SellerName:    "Mike Chen",
			SellerCollege: "Stanford University",
			CreatedAt:     time.Date(2024, 1, 14, 15, 30, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 1, 14, 15, 30, 0, 0, time.UTC),
			Status:        models.StatusAvailable,
			Tags:          []string{"laptop", "apple", "macbook", "m1"},
		},
		{
			ID:            "3",
			Title:         "Complete Stationery Set",
			Description:   "Brand new stationery set including pens, pencils, highlighters, notebooks, and more.",
			Price:         25,
			Category:      models.CategoryStationery,
			Condition:     models.ConditionNew,
			Images:        []string{"/stationery-set-pens-pencils.jpg"},
			SellerID:      "demo-user-3",
			SellerName:    "Emma Davis",
			SellerCollege: "Harvard University",
			CreatedAt:     time.Date(2024, 1, 13, 9, 15, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 1, 13, 9, 15, 0, 0, time.UTC),
			Status:        models.StatusAvailable,
			Tags:          []string{"pens", "pencils", "notebooks", "highlighters"},
		},
	}
}

package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campusmarket/marketstore/internal/logger"
	"github.com/campusmarket/marketstore/internal/models"
)

// ProductCollection defines the persistence operations for the product list.
// The bool from Load reports whether a usable document existed, so the seed
// catalog is installed exactly once.
type ProductCollection interface {
	Load(ctx context.Context) ([]models.Product, bool, error)
	Save(ctx context.Context, products []models.Product) error
}

// ProductService handles listings: the public filtered view, the owner's
// management view, and the admin mutations.
type ProductService struct {
	products ProductCollection
}

// NewProductService creates a new ProductService.
func NewProductService(products ProductCollection) *ProductService {
	return &ProductService{products: products}
}

// Bootstrap installs the demo catalog when the product document has never
// been written (or was corrupt and discarded). An empty list that was
// deliberately saved is left alone.
func (svc *ProductService) Bootstrap(ctx context.Context) error {
	_, seeded, err := svc.products.Load(ctx)
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	catalog := DefaultCatalog()
	if err := svc.products.Save(ctx, catalog); err != nil {
		return err
	}
	logger.Log.Infow("seed catalog installed", "count", len(catalog))
	return nil
}

// List returns available products matching every supplied filter predicate.
// Sold and reserved items never appear here; this is the public browse view.
func (svc *ProductService) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	products, _, err := svc.products.Load(ctx)
	if err != nil {
		return nil, err
	}

	matched := []models.Product{}
	for _, p := range products {
		if p.Status == models.StatusAvailable && matches(p, filter) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func matches(p models.Product, f models.ProductFilter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Condition != "" && p.Condition != f.Condition {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.College != "" && p.SellerCollege != f.College {
		return false
	}
	if f.Search != "" {
		query := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) &&
			!anyTagContains(p.Tags, query) {
			return false
		}
	}
	return true
}

func anyTagContains(tags []string, query string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Create assigns the identifier and both timestamps, validates the record,
// and appends it to the collection. Status defaults to available.
func (svc *ProductService) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	now := time.Now().UTC()
	product.ID = uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.Status == "" {
		product.Status = models.StatusAvailable
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	products, _, err := svc.products.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := svc.products.Save(ctx, append(products, product)); err != nil {
		return nil, err
	}

	logger.Log.Infow("product created", "product_id", product.ID, "seller_id", product.SellerID)
	return &product, nil
}

// Update merges the non-nil fields into the matching record and refreshes
// UpdatedAt. An unknown id is a silent no-op.
func (svc *ProductService) Update(ctx context.Context, id string, update models.ProductUpdate) error {
	products, _, err := svc.products.Load(ctx)
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}
		apply(&products[i], update)
		products[i].UpdatedAt = time.Now().UTC()
		return svc.products.Save(ctx, products)
	}

	logger.Log.Debugw("update of unknown product ignored", "product_id", id)
	return nil
}

func apply(p *models.Product, u models.ProductUpdate) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Condition != nil {
		p.Condition = *u.Condition
	}
	if u.Images != nil {
		p.Images = *u.Images
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
	if u.SellerPhone != nil {
		p.SellerPhone = *u.SellerPhone
	}
}

// MarkSold flips a listing to sold; the admin products page shortcut.
func (svc *ProductService) MarkSold(ctx context.Context, id string) error {
	sold := models.StatusSold
	return svc.Update(ctx, id, models.ProductUpdate{Status: &sold})
}

// Delete removes the matching record. An unknown id is a silent no-op.
func (svc *ProductService) Delete(ctx context.Context, id string) error {
	products, _, err := svc.products.Load(ctx)
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		logger.Log.Debugw("delete of unknown product ignored", "product_id", id)
		return nil
	}
	return svc.products.Save(ctx, kept)
}

// GetByID returns the matching record, or nil when there is none.
func (svc *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	products, _, err := svc.products.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// GetByOwner returns every listing of the given seller, whatever its status.
// This backs the owner's management view, so sold and reserved items show.
func (svc *ProductService) GetByOwner(ctx context.Context, userID string) ([]models.Product, error) {
	products, _, err := svc.products.Load(ctx)
	if err != nil {
		return nil, err
	}

	owned := []models.Product{}
	for _, p := range products {
		if p.SellerID == userID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

// RecentByOwner returns the seller's newest listings by update time.
func (svc *ProductService) RecentByOwner(ctx context.Context, userID string, n int) ([]models.Product, error) {
	owned, err := svc.GetByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].UpdatedAt.After(owned[j].UpdatedAt)
	})
	if n >= 0 && len(owned) > n {
		owned = owned[:n]
	}
	return owned, nil
}

// SellerStats summarizes one seller's listings for the dashboard cards.
func (svc *ProductService) SellerStats(ctx context.Context, userID string) (models.SellerStats, error) {
	owned, err := svc.GetByOwner(ctx, userID)
	if err != nil {
		return models.SellerStats{}, err
	}

	var stats models.SellerStats
	for _, p := range owned {
		switch p.Status {
		case models.StatusAvailable:
			stats.ActiveListings++
		case models.StatusSold:
			stats.SoldItems++
			stats.TotalEarnings += p.Price
		}
	}
	return stats, nil
}

package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campusmarket/marketstore/internal/logger"
	"github.com/campusmarket/marketstore/internal/models"
	"github.com/campusmarket/marketstore/internal/storage"
)

// productsKey holds the full product list.
const productsKey = "marketplace-products"

// ProductRepository owns the persisted product collection.
type ProductRepository struct {
	storage storage.Storage
}

func NewProductRepository(s storage.Storage) *ProductRepository {
	return &ProductRepository{storage: s}
}

// Load returns the product collection and whether a usable document existed.
// Missing and corrupt documents both report false, which lets the seed
// catalog be installed on first run.
func (r *ProductRepository) Load(ctx context.Context) ([]models.Product, bool, error) {
	raw, err := r.storage.Get(ctx, productsKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.Product{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load products: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		logger.Log.Warnw("discarding corrupt product collection", "key", productsKey, "error", err)
		return []models.Product{}, false, nil
	}
	for i := range products {
		if err := products[i].Validate(); err != nil {
			logger.Log.Warnw("discarding invalid product collection", "key", productsKey, "error", err)
			return []models.Product{}, false, nil
		}
	}
	return products, true, nil
}

// Save persists the full product collection.
func (r *ProductRepository) Save(ctx context.Context, products []models.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}
	if err := r.storage.Set(ctx, productsKey, raw); err != nil {
		return fmt.Errorf("save products: %w", err)
	}

	logger.Log.Debugw("product collection saved", "key", productsKey, "count", len(products))
	return nil
}

// Package repositories maps each marketplace collection onto one document in
// the shared store. Every save rewrites the owning document in full; a
// missing, unparseable, or invalid document degrades to the empty collection
// and is never surfaced as an error.
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

// usersKey holds the full user list, credentials included.
const usersKey = "marketplace-users"

// UserRepository owns the persisted user collection.
type UserRepository struct {
	storage storage.Storage
}

func NewUserRepository(s storage.Storage) *UserRepository {
	return &UserRepository{storage: s}
}

// Load returns the full user collection.
func (r *UserRepository) Load(ctx context.Context) ([]models.StoredUser, error) {
	raw, err := r.storage.Get(ctx, usersKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.StoredUser{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	var users []models.StoredUser
	if err := json.Unmarshal(raw, &users); err != nil {
		logger.Log.Warnw("discarding corrupt user collection", "key", usersKey, "error", err)
		return []models.StoredUser{}, nil
	}
	for i := range users {
		users[i].Normalize()
		if err := users[i].Validate(); err != nil {
			logger.Log.Warnw("discarding invalid user collection", "key", usersKey, "error", err)
			return []models.StoredUser{}, nil
		}
	}
	return users, nil
}

// Save persists the full user collection.
func (r *UserRepository) Save(ctx context.Context, users []models.StoredUser) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := r.storage.Set(ctx, usersKey, raw); err != nil {
		return fmt.Errorf("save users: %w", err)
	}

	logger.Log.Debugw("user collection saved", "key", usersKey, "count", len(users))
	return nil
}

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

// sessionKey holds the current user's record, credential already stripped.
const sessionKey = "marketplace-user"

// SessionRepository owns the persisted "current user" record.
type SessionRepository struct {
	storage storage.Storage
}

func NewSessionRepository(s storage.Storage) *SessionRepository {
	return &SessionRepository{storage: s}
}

// Load returns the session user, or nil when none is stored. A record that
// fails to parse is deleted and reported as "no session", never as an error.
func (r *SessionRepository) Load(ctx context.Context) (*models.User, error) {
	raw, err := r.storage.Get(ctx, sessionKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		logger.Log.Warnw("discarding corrupt session record", "key", sessionKey, "error", err)
		_ = r.storage.Delete(ctx, sessionKey)
		return nil, nil
	}
	user.Normalize()
	if err := user.Validate(); err != nil {
		logger.Log.Warnw("discarding invalid session record", "key", sessionKey, "error", err)
		_ = r.storage.Delete(ctx, sessionKey)
		return nil, nil
	}
	return &user, nil
}

// Save establishes the given user as the session.
func (r *SessionRepository) Save(ctx context.Context, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.storage.Set(ctx, sessionKey, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes the session record.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.storage.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

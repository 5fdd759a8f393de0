package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campusmarket/marketstore/internal/models"
	"github.com/campusmarket/marketstore/internal/storage"
)

func TestSessionRepository_NoSession(t *testing.T) {
	repo := NewSessionRepository(storage.NewMemory())

	user, err := repo.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionRepository_SaveLoadClear(t *testing.T) {
	repo := NewSessionRepository(storage.NewMemory())
	ctx := context.Background()

	saved := models.User{
		ID:        "u1",
		Email:     "alice@example.com",
		Name:      "Alice",
		College:   "MIT",
		Role:      models.RoleStudent,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:    models.UserActive,
	}
	assert.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, &saved, loaded)

	assert.NoError(t, repo.Clear(ctx))
	loaded, err = repo.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionRepository_CorruptRecordClearedSilently(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, "marketplace-user", []byte("###")))

	repo := NewSessionRepository(store)
	user, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, user)

	// The corrupt record is removed, not kept around.
	_, err = store.Get(ctx, "marketplace-user")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFile_EmptyPath(t *testing.T) {
	_, err := NewFile("  ")
	assert.Error(t, err)
}

func TestFile_SetGetDelete(t *testing.T) {
	s, err := NewFile(t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	_, err = s.Get(ctx, "marketplace-products")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.Set(ctx, "marketplace-products", []byte(`[]`)))

	got, err := s.Get(ctx, "marketplace-products")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	assert.NoError(t, s.Delete(ctx, "marketplace-products"))
	_, err = s.Get(ctx, "marketplace-products")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.Delete(ctx, "marketplace-products"))
}

func TestFile_OverwriteReplacesDocument(t *testing.T) {
	s, err := NewFile(t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, s.Set(ctx, "key", []byte("first")))
	assert.NoError(t, s.Set(ctx, "key", []byte("second")))

	got, err := s.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestFile_KeySanitizing(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFile(dir)
	assert.NoError(t, err)
	ctx := context.Background()

	// Keys with path separators must stay inside the base directory.
	assert.NoError(t, s.Set(ctx, "conversations/../../etc", []byte("x")))

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "/")

	got, err := s.Get(ctx, "conversations/../../etc")
	assert.NoError(t, err)
	assert.Equal(t, []byte("x"), got)
}

package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSaveAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	body := "%PDF-1.7 body"
	require.NoError(t, store.Save(ctx, "user_1_a.pdf", strings.NewReader(body), int64(len(body)), "application/pdf"))

	data, err := os.ReadFile(filepath.Join(dir, "user_1_a.pdf"))
	require.NoError(t, err)
	assert.Equal(t, body, string(data))

	require.NoError(t, store.Delete(ctx, "user_1_a.pdf"))
	_, err = os.Stat(filepath.Join(dir, "user_1_a.pdf"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.Delete(ctx, "user_1_a.pdf"))
}

func TestLocalStoreOverwrites(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k.pdf", strings.NewReader("first"), 5, ""))
	require.NoError(t, store.Save(ctx, "k.pdf", strings.NewReader("second"), 6, ""))

	data, err := os.ReadFile(filepath.Join(store.Dir(), "k.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestLocalStoreRejectsBadInput(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", "..", "../escape.pdf", `a\b.pdf`} {
		require.ErrorIs(t, store.Save(ctx, key, strings.NewReader("x"), 1, ""), ErrInvalidKey, key)
	}

	require.Error(t, store.Save(ctx, "short.pdf", strings.NewReader("abc"), 10, ""))
	_, err = os.Stat(filepath.Join(store.Dir(), "short.pdf"))
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

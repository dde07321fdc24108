package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"palengke/config"
	"palengke/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestStore(t *testing.T) (service.FileStore, string) {
	t.Helper()

	basePath := t.TempDir()
	lc := fxtest.NewLifecycle(t)
	store, err := NewLocalStore(Params{
		Lifecycle: lc,
		Config: &config.Config{
			Storage: &config.StorageConfig{BasePath: basePath},
		},
	})
	require.NoError(t, err)
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return store, basePath
}

func TestLocalStore_Store(t *testing.T) {
	store, basePath := createTestStore(t)

	key, err := store.Store(context.Background(), "user_pics", "selfie.PNG", []byte("png bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "user_pics/"), "key keeps the category prefix")
	assert.True(t, strings.HasSuffix(key, ".png"), "extension survives lowercased")

	content, err := os.ReadFile(filepath.Join(basePath, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), content)
}

func TestLocalStore_Store_SameNameNeverCollides(t *testing.T) {
	store, _ := createTestStore(t)
	ctx := context.Background()

	first, err := store.Store(ctx, "shop_pics", "storefront.jpg", []byte("one"))
	require.NoError(t, err)
	second, err := store.Store(ctx, "shop_pics", "storefront.jpg", []byte("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

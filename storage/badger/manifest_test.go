package badger

import (
	"context"
	"testing"

	"github.com/poiesic/yojana/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestRoundTrip(t *testing.T) {
	schemes, manifests, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { schemes.Close(); backend.Close() }()

	ctx := context.Background()

	loaded, err := manifests.LoadManifest(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "no manifest before first save")

	err = manifests.SaveManifest(ctx, &core.Manifest{EmbeddingModel: "text-embedding-004", Dimensions: 768, SchemeCount: 12})
	require.NoError(t, err)

	loaded, err = manifests.LoadManifest(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "text-embedding-004", loaded.EmbeddingModel)
	assert.Equal(t, 768, loaded.Dimensions)
	assert.Equal(t, 12, loaded.SchemeCount)
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestNewRepositories_OnDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	schemes, manifests, backend, err := NewRepositories(dir)
	require.NoError(t, err)
	_, err = schemes.AddSchemes(ctx, &core.Scheme{Name: "A", ApplyLink: "a"})
	require.NoError(t, err)
	require.NoError(t, manifests.SaveManifest(ctx, &core.Manifest{EmbeddingModel: "m"}))
	require.NoError(t, backend.Close())

	schemes, manifests, backend, err = NewRepositories(dir)
	require.NoError(t, err)
	defer backend.Close()

	count, err := schemes.CountSchemes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	m, err := manifests.LoadManifest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "m", m.EmbeddingModel)
}

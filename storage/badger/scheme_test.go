package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.SchemeRepository {
	t.Helper()
	schemes, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		schemes.Close()
		backend.Close()
	})
	return schemes
}

func TestNewSchemeRepository_RequiresBackend(t *testing.T) {
	_, err := NewSchemeRepository(nil)
	assert.ErrorIs(t, err, ErrBackendRequired)
}

func TestAddAndGetScheme(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	scheme := &core.Scheme{
		Name:      "PM-KISAN",
		ApplyLink: "https://pmkisan.gov.in",
		Vector:    []float32{1, 0},
	}
	added, err := repo.AddSchemes(ctx, scheme)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, core.IDFromContent(scheme.Key()), added[0].Id)
	assert.False(t, added[0].InsertedAt.IsZero())

	got, err := repo.GetScheme(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "PM-KISAN", got.Name)
	assert.Equal(t, []float32{1, 0}, got.Vector)

	_, err = repo.GetScheme(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAddSchemes_ReplacePreservesInsertedAt(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := &core.Scheme{Name: "A", ApplyLink: "x", InsertedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	_, err := repo.AddSchemes(ctx, first)
	require.NoError(t, err)

	again := &core.Scheme{Name: "A", ApplyLink: "x", Benefits: "more"}
	_, err = repo.AddSchemes(ctx, again)
	require.NoError(t, err)

	count, err := repo.CountSchemes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := repo.GetScheme(ctx, first.Id)
	require.NoError(t, err)
	assert.Equal(t, "more", got.Benefits)
	assert.True(t, got.InsertedAt.Equal(first.InsertedAt))
}

func TestUpdateAndDeleteSchemes(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.UpdateSchemes(ctx, &core.Scheme{Id: 7, Name: "missing"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	added, err := repo.AddSchemes(ctx, &core.Scheme{Name: "A", ApplyLink: "a"}, &core.Scheme{Name: "B", ApplyLink: "b"})
	require.NoError(t, err)

	added[0].Vector = []float32{0, 1}
	_, err = repo.UpdateSchemes(ctx, added[0])
	require.NoError(t, err)

	got, err := repo.GetSchemes(ctx, added[0].Id, 999, added[1].Id)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []float32{0, 1}, got[0].Vector)

	require.NoError(t, repo.DeleteSchemes(ctx, added[1].Id))
	assert.ErrorIs(t, repo.DeleteSchemes(ctx, added[1].Id), storage.ErrNotFound)

	all, err := repo.GetAllSchemes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFind_RanksByCosine(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddSchemes(ctx,
		&core.Scheme{Name: "close", ApplyLink: "1", Vector: []float32{0.9, 0.1, 0}},
		&core.Scheme{Name: "exact", ApplyLink: "2", Vector: []float32{2, 0, 0}},
		&core.Scheme{Name: "far", ApplyLink: "3", Vector: []float32{0, 0, 1}},
		&core.Scheme{Name: "novector", ApplyLink: "4"},
		&core.Scheme{Name: "wrongdim", ApplyLink: "5", Vector: []float32{1, 0}},
	)
	require.NoError(t, err)

	results, err := repo.Find(ctx, storage.Filter{}, []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "exact", results[0].Scheme.Name)
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-5)
	assert.Equal(t, "close", results[1].Scheme.Name)
	assert.Equal(t, "far", results[2].Scheme.Name)
	assert.Nil(t, results[0].Scheme.Vector, "vector is not returned with hits")

	stored, err := repo.GetScheme(ctx, results[0].Scheme.Id)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Vector, "search must not mutate storage")
}

func TestFind_Limit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		_, err := repo.AddSchemes(ctx, &core.Scheme{
			Name:      "scheme",
			ApplyLink: string(rune('a' + i)),
			Vector:    []float32{1, float32(i) / 30},
		})
		require.NoError(t, err)
	}

	results, err := repo.Find(ctx, storage.Filter{}, []float32{1, 0}, 20)
	require.NoError(t, err)
	assert.Len(t, results, 20)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Similarity, results[i].Similarity)
	}
}

func TestFind_AppliesFilter(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddSchemes(ctx,
		&core.Scheme{Name: "women", ApplyLink: "1", TargetGender: core.GenderFemale, Vector: []float32{1, 0}},
		&core.Scheme{Name: "men", ApplyLink: "2", TargetGender: core.GenderMale, Vector: []float32{1, 0}},
		&core.Scheme{Name: "everyone", ApplyLink: "3", TargetGender: core.GenderAll, Vector: []float32{1, 0}},
		&core.Scheme{Name: "untagged", ApplyLink: "4", Vector: []float32{1, 0}},
	)
	require.NoError(t, err)

	filter := storage.Filter{}.And(
		storage.Eq(storage.FieldTargetGender, "female"),
		storage.Eq(storage.FieldTargetGender, "all"),
		storage.Absent(storage.FieldTargetGender),
	)
	results, err := repo.Find(ctx, filter, []float32{1, 0}, 20)
	require.NoError(t, err)

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Scheme.Name
	}
	assert.ElementsMatch(t, []string{"women", "everyone", "untagged"}, names)
}

func TestFind_InvalidQuery(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Find(ctx, storage.Filter{}, nil, 20)
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)

	_, err = repo.Find(ctx, storage.Filter{}, []float32{1}, 0)
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

func TestFind_Cancelled(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.AddSchemes(context.Background(), &core.Scheme{Name: "a", ApplyLink: "a", Vector: []float32{1}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.Find(ctx, storage.Filter{}, []float32{1}, 20)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFind_ClosedBackend(t *testing.T) {
	schemes, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	_, err = schemes.Find(context.Background(), storage.Filter{}, []float32{1}, 20)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestListSchemes_FiltersByCategory(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddSchemes(ctx,
		&core.Scheme{Name: "Ayushman Bharat", ApplyLink: "1", Category: "health", Vector: []float32{1, 0}},
		&core.Scheme{Name: "PM-KISAN", ApplyLink: "2", Category: "agriculture", Vector: []float32{1, 0}},
		&core.Scheme{Name: "Janani Suraksha", ApplyLink: "3", Category: "health"},
		&core.Scheme{Name: "Untagged", ApplyLink: "4"},
	)
	require.NoError(t, err)

	filter := storage.Filter{}.And(storage.Eq(storage.FieldCategory, "Health"))
	results, err := repo.ListSchemes(ctx, filter, 20)
	require.NoError(t, err)

	names := make([]string, len(results))
	for i, s := range results {
		names[i] = s.Name
		assert.Nil(t, s.Vector, "listing does not return vectors")
		if i > 0 {
			assert.Less(t, results[i-1].Id, s.Id, "results are in ID order")
		}
	}
	assert.ElementsMatch(t, []string{"Ayushman Bharat", "Janani Suraksha"}, names)
}

func TestListSchemes_Limit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := range 5 {
		_, err := repo.AddSchemes(ctx, &core.Scheme{Name: "scheme", ApplyLink: string(rune('a' + i)), Category: "pension"})
		require.NoError(t, err)
	}

	results, err := repo.ListSchemes(ctx, storage.Filter{}, 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	_, err = repo.ListSchemes(ctx, storage.Filter{}, 0)
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

func TestListSchemes_ClosedBackend(t *testing.T) {
	schemes, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	_, err = schemes.ListSchemes(context.Background(), storage.Filter{}, 10)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

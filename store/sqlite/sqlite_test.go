package sqlite_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/compensation-engine/catalog"
	"github.com/warp/compensation-engine/compensation"
	"github.com/warp/compensation-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSeedAndList(t *testing.T) {
	// GIVEN: An empty store
	// WHEN: Seeding the default catalog and listing it back
	// THEN: Every entry round-trips through the JSON column

	store := newTestStore(t)
	ctx := context.Background()
	defaults := catalog.DefaultCatalog()

	require.NoError(t, store.Seed(ctx, defaults))

	cat, err := store.ListTypes(ctx)
	require.NoError(t, err)
	require.Len(t, cat, len(defaults))

	night, ok := cat.Lookup("night_shift")
	require.True(t, ok)
	assert.Equal(t, compensation.CategoryEssential, night.Category)
	assert.Equal(t, compensation.ValueDollarsPerHour, night.ValueUnit())
}

func TestSeed_Idempotent(t *testing.T) {
	// Re-seeding never reverts deployment edits.
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, catalog.DefaultCatalog()))

	// Deployment widens the night shift range.
	edited, err := store.GetType(ctx, "night_shift")
	require.NoError(t, err)
	require.NotNil(t, edited)
	edited.Value.Max = decimal.NewFromInt(30)
	require.NoError(t, store.SaveType(ctx, *edited))

	require.NoError(t, store.Seed(ctx, catalog.DefaultCatalog()))

	got, err := store.GetType(ctx, "night_shift")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Value.Max.Equal(decimal.NewFromInt(30)),
		"seed overwrote an edited entry: max = %v", got.Value.Max)
}

func TestGetType_Missing(t *testing.T) {
	store := newTestStore(t)

	cfg, err := store.GetType(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestSaveAndDeleteType(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cfg := compensation.TypeConfig{
		Key:      "hazard_pay",
		Category: compensation.CategoryRare,
		Question: "Do you earn hazard pay?",
		Value: compensation.Range{
			Min: decimal.NewFromInt(1), Max: decimal.NewFromInt(20),
			Unit: string(compensation.ValueDollarsPerHour),
		},
		Frequency: compensation.Range{
			Min: decimal.Zero, Max: decimal.NewFromInt(1),
			Unit: string(compensation.FreqPerShift),
		},
	}

	require.NoError(t, store.SaveType(ctx, cfg))

	got, err := store.GetType(ctx, "hazard_pay")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Do you earn hazard pay?", got.Question)

	require.NoError(t, store.DeleteType(ctx, "hazard_pay"))

	got, err = store.GetType(ctx, "hazard_pay")
	require.NoError(t, err)
	assert.Nil(t, got)
}

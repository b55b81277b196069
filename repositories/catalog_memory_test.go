package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCatalogDefaults(t *testing.T) {
	repo := NewMemoryCatalogRepository()
	ctx := context.Background()

	flavors, err := repo.GetFlavors(ctx)
	require.NoError(t, err)
	require.Len(t, flavors, 8)
	assert.Equal(t, "Vanilla Dream", flavors[0].Name)
	assert.Equal(t, "4.50", flavors[0].Price.StringFixed(2))

	sizes, err := repo.GetSizeOptions(ctx)
	require.NoError(t, err)
	require.Len(t, sizes, 3)
	assert.Equal(t, "1.8", sizes[1].Multiplier.String())

	containers, err := repo.GetContainerOptions(ctx)
	require.NoError(t, err)
	require.Len(t, containers, 3)
	assert.Equal(t, "cup", containers[1].ID)
	assert.True(t, containers[1].ExtraCost.IsZero())
}

func TestMemoryCatalogReturnsCopies(t *testing.T) {
	repo := NewMemoryCatalogRepository()
	ctx := context.Background()

	flavors, err := repo.GetFlavors(ctx)
	require.NoError(t, err)
	flavors[0].Name = "changed"
	flavors[0].Allergens[0] = "changed"

	sizes, err := repo.GetSizeOptions(ctx)
	require.NoError(t, err)
	sizes[0].ID = "changed"

	again, err := repo.GetFlavors(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Vanilla Dream", again[0].Name)
	assert.Equal(t, "dairy", again[0].Allergens[0])

	sizesAgain, err := repo.GetSizeOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "single", sizesAgain[0].ID)
}

func TestShopData(t *testing.T) {
	assert.NotEmpty(t, ShopInfo().Address)
	assert.NotEmpty(t, SpecialOffers())
	assert.NotEmpty(t, CustomerReviews())
}

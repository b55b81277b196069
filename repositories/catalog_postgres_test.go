package repositories_test

import (
	"context"
	"os"
	"testing"

	"ice-cream-shop/config"
	"ice-cream-shop/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Runs against a real database only when TEST_DATABASE_URL is set.
func TestPostgresCatalogMatchesMemoryCatalog(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := config.ConnectDB(ctx, &config.Config{
		DatabaseURL:    dsn,
		MigrationsPath: "../database/migration",
	}, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	pg := repositories.NewPostgresCatalogRepository(db)
	mem := repositories.NewMemoryCatalogRepository()

	want, err := mem.GetFlavors(ctx)
	require.NoError(t, err)
	got, err := pg.GetFlavors(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.Equal(t, want[i].Allergens, got[i].Allergens)
		assert.True(t, want[i].Price.Equal(got[i].Price), "flavor %d price", want[i].ID)
	}

	sizes, err := pg.GetSizeOptions(ctx)
	require.NoError(t, err)
	require.Len(t, sizes, 3)
	assert.Equal(t, "1.8", sizes[1].Multiplier.String())

	containers, err := pg.GetContainerOptions(ctx)
	require.NoError(t, err)
	require.Len(t, containers, 3)
	assert.Equal(t, "bowl", containers[2].ID)
	assert.Equal(t, "1.00", containers[2].ExtraCost.StringFixed(2))
}

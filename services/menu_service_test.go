package services

import (
	"context"
	"errors"
	"testing"

	"ice-cream-shop/models"
	"ice-cream-shop/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuServiceFlavors(t *testing.T) {
	menu := newTestMenu(t)

	assert.Len(t, menu.Flavors("", ""), 8)
	assert.Len(t, menu.Flavors(AllCategories, ""), 8)

	premium := menu.Flavors("Premium", "")
	require.Len(t, premium, 2)
	assert.Equal(t, "Salted Caramel Swirl", premium[0].Name)

	byDescription := menu.Flavors(AllCategories, "  MARSHMALLOW ")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Rocky Road", byDescription[0].Name)

	assert.Empty(t, menu.Flavors("Chocolate", "vanilla"))
	assert.NotNil(t, menu.Flavors("Sorbet", ""))
}

func TestMenuServiceSkipsUnavailable(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepositoryWith(
		[]models.CatalogItem{
			{ID: 1, Name: "Vanilla", Price: dec("4.50"), Category: "Classic", Available: true},
			{ID: 2, Name: "Seasonal", Price: dec("5.00"), Category: "Classic", Available: false},
		},
		[]models.SizeOption{{ID: "single", Name: "Single Scoop", Multiplier: dec("1")}},
		[]models.ContainerOption{{ID: "cup", Name: "Cup", ExtraCost: dec("0")}},
	)
	menu, err := NewMenuService(context.Background(), repo)
	require.NoError(t, err)

	assert.Len(t, menu.Flavors("", ""), 1)

	_, err = menu.Quote(2, "", "", 1)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMenuServiceFlavor(t *testing.T) {
	menu := newTestMenu(t)

	flavor, err := menu.Flavor(7)
	require.NoError(t, err)
	assert.Equal(t, "Pistachio Gelato", flavor.Name)

	_, err = menu.Flavor(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMenuServiceCategories(t *testing.T) {
	menu := newTestMenu(t)
	assert.Equal(t, []string{"All", "Classic", "Chocolate", "Fruit", "Premium"}, menu.Categories())
}

func TestMenuServiceQuote(t *testing.T) {
	menu := newTestMenu(t)

	t.Run("defaults to a single scoop in a cup", func(t *testing.T) {
		line, err := menu.Quote(6, "", "", 0)
		require.NoError(t, err)
		assert.Equal(t, "single", line.SizeID)
		assert.Equal(t, "cup", line.ContainerID)
		assert.Equal(t, 1, line.Quantity)
		assert.Equal(t, "5.00", line.UnitPrice.StringFixed(CentPlaces))
	})

	t.Run("prices the configuration", func(t *testing.T) {
		line, err := menu.Quote(1, "double", "cone", 2)
		require.NoError(t, err)
		assert.Equal(t, "8.60", line.UnitPrice.StringFixed(CentPlaces))
		assert.Equal(t, "Double Scoop", line.SizeName)
		assert.Equal(t, "Waffle Cone", line.ContainerName)
	})

	t.Run("unknown ids", func(t *testing.T) {
		_, err := menu.Quote(1, "quadruple", "cup", 1)
		assert.ErrorIs(t, err, ErrUnknownSize)

		_, err = menu.Quote(1, "single", "bucket", 1)
		assert.ErrorIs(t, err, ErrUnknownContainer)

		_, err = menu.Quote(42, "single", "cup", 1)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := menu.Quote(1, "single", "cup", -1)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

type failingCatalog struct {
	repositories.CatalogRepository
}

func (failingCatalog) GetFlavors(context.Context) ([]models.CatalogItem, error) {
	return nil, errors.New("connection refused")
}

func TestNewMenuServiceLoadError(t *testing.T) {
	_, err := NewMenuService(context.Background(), failingCatalog{})
	assert.ErrorContains(t, err, "load flavors")
}

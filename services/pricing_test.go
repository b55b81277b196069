package services

import (
	"testing"

	"ice-cream-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUnitPrice(t *testing.T) {
	tests := []struct {
		name      string
		base      string
		mult      string
		surcharge string
		want      string
	}{
		{"double in cone", "4.50", "1.8", "0.50", "8.60"},
		{"single in cup", "5.00", "1", "0", "5.00"},
		{"triple in bowl", "6.25", "2.5", "1.00", "16.63"},
		{"rounds half away from zero", "5.25", "2.5", "0", "13.13"},
		{"free flavor", "0", "1", "0.50", "0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveUnitPrice(
				dec(tt.base),
				models.SizeOption{ID: "s", Multiplier: dec(tt.mult)},
				models.ContainerOption{ID: "c", ExtraCost: dec(tt.surcharge)},
			)
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
			assert.Equal(t, tt.want, got.StringFixed(CentPlaces))
		})
	}
}

func TestResolveUnitPriceIsDeterministic(t *testing.T) {
	size := models.SizeOption{ID: "double", Multiplier: dec("1.8")}
	container := models.ContainerOption{ID: "cone", ExtraCost: dec("0.50")}

	first, err := ResolveUnitPrice(dec("4.50"), size, container)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		got, err := ResolveUnitPrice(dec("4.50"), size, container)
		require.NoError(t, err)
		assert.True(t, got.Equal(first))
	}
}

func TestResolveUnitPriceRejectsInvalidInput(t *testing.T) {
	okSize := models.SizeOption{ID: "single", Multiplier: dec("1")}
	okContainer := models.ContainerOption{ID: "cup", ExtraCost: dec("0")}

	_, err := ResolveUnitPrice(dec("-1"), okSize, okContainer)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = ResolveUnitPrice(dec("4.50"), models.SizeOption{ID: "none", Multiplier: dec("0")}, okContainer)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = ResolveUnitPrice(dec("4.50"), okSize, models.ContainerOption{ID: "refund", ExtraCost: dec("-0.10")})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, "17.20", LineTotal(dec("8.60"), 2).StringFixed(CentPlaces))
	assert.True(t, LineTotal(dec("8.60"), 0).IsZero())
}

func TestQuoteLine(t *testing.T) {
	item := models.CatalogItem{
		ID:        1,
		Name:      "Vanilla Dream",
		Image:     "vanilla.jpg",
		Price:     dec("4.50"),
		Allergens: []string{"dairy"},
	}
	size := models.SizeOption{ID: "double", Name: "Double Scoop", Multiplier: dec("1.8")}
	container := models.ContainerOption{ID: "cone", Name: "Waffle Cone", ExtraCost: dec("0.50")}

	t.Run("snapshots display fields", func(t *testing.T) {
		line, err := QuoteLine(item, size, container, 3)
		require.NoError(t, err)

		assert.Equal(t, models.LineKey{CatalogID: 1, SizeID: "double", ContainerID: "cone"}, line.Key())
		assert.Equal(t, 3, line.Quantity)
		assert.Equal(t, "8.60", line.UnitPrice.StringFixed(CentPlaces))
		assert.True(t, line.BasePrice.Equal(dec("4.50")))
		assert.Equal(t, "Vanilla Dream", line.Name)
		assert.Equal(t, "Double Scoop", line.SizeName)
		assert.Equal(t, "Waffle Cone", line.ContainerName)
		assert.Equal(t, []string{"dairy"}, line.Allergens)

		line.Allergens[0] = "changed"
		assert.Equal(t, "dairy", item.Allergens[0])
	})

	t.Run("rejects quantity outside 1 to MaxLineQuantity", func(t *testing.T) {
		_, err := QuoteLine(item, size, container, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = QuoteLine(item, size, container, MaxLineQuantity+1)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		line, err := QuoteLine(item, size, container, MaxLineQuantity)
		require.NoError(t, err)
		assert.Equal(t, MaxLineQuantity, line.Quantity)
	})

	t.Run("propagates price errors", func(t *testing.T) {
		_, err := QuoteLine(item, models.SizeOption{ID: "bad"}, container, 1)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

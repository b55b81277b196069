package services

import (
	"context"
	"testing"

	"ice-cream-shop/models"
	"ice-cream-shop/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestMenu(t *testing.T) *MenuService {
	t.Helper()
	menu, err := NewMenuService(context.Background(), repositories.NewMemoryCatalogRepository())
	require.NoError(t, err)
	return menu
}

func quote(t *testing.T, menu *MenuService, flavorID int, size, container string, qty int) models.LineCandidate {
	t.Helper()
	line, err := menu.Quote(flavorID, size, container, qty)
	require.NoError(t, err)
	return line
}

func assertSameCart(t *testing.T, want, got models.Cart) {
	t.Helper()
	assert.Equal(t, want.Items, got.Items)
	assert.True(t, want.Total.Equal(got.Total), "total: want %s, got %s", want.Total, got.Total)
}

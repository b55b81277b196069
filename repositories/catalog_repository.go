package repositories

import (
	"context"
	"errors"

	"ice-cream-shop/models"
)

var ErrNotFound = errors.New("not found")

// CatalogRepository supplies the read-only menu tables. They are loaded once
// at startup; nothing writes to them afterwards.
type CatalogRepository interface {
	GetFlavors(ctx context.Context) ([]models.CatalogItem, error)
	GetSizeOptions(ctx context.Context) ([]models.SizeOption, error)
	GetContainerOptions(ctx context.Context) ([]models.ContainerOption, error)
}

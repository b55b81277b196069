package repositories

import (
	"context"

	"ice-cream-shop/models"

	"github.com/shopspring/decimal"
)

type MemoryCatalogRepository struct {
	flavors    []models.CatalogItem
	sizes      []models.SizeOption
	containers []models.ContainerOption
}

// NewMemoryCatalogRepository serves the built-in shop menu.
func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{
		flavors:    defaultFlavors(),
		sizes:      defaultSizes(),
		containers: defaultContainers(),
	}
}

func NewMemoryCatalogRepositoryWith(flavors []models.CatalogItem, sizes []models.SizeOption, containers []models.ContainerOption) *MemoryCatalogRepository {
	return &MemoryCatalogRepository{flavors: flavors, sizes: sizes, containers: containers}
}

func (r *MemoryCatalogRepository) GetFlavors(ctx context.Context) ([]models.CatalogItem, error) {
	flavors := make([]models.CatalogItem, len(r.flavors))
	for i, f := range r.flavors {
		f.Allergens = append([]string(nil), f.Allergens...)
		flavors[i] = f
	}
	return flavors, nil
}

func (r *MemoryCatalogRepository) GetSizeOptions(ctx context.Context) ([]models.SizeOption, error) {
	return append([]models.SizeOption(nil), r.sizes...), nil
}

func (r *MemoryCatalogRepository) GetContainerOptions(ctx context.Context) ([]models.ContainerOption, error) {
	return append([]models.ContainerOption(nil), r.containers...), nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultFlavors() []models.CatalogItem {
	return []models.CatalogItem{
		{
			ID:          1,
			Name:        "Vanilla Dream",
			Description: "Classic Madagascar vanilla with real vanilla bean specks",
			Price:       price("4.50"),
			Category:    "Classic",
			Image:       "https://images.unsplash.com/photo-1570197788417-0e82375c9371?w=400&h=300&fit=crop",
			Popular:     true,
			Allergens:   []string{"dairy"},
			Available:   true,
		},
		{
			ID:          2,
			Name:        "Chocolate Fudge Brownie",
			Description: "Rich chocolate ice cream with chunks of fudgy brownies",
			Price:       price("5.25"),
			Category:    "Chocolate",
			Image:       "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400&h=300&fit=crop",
			Popular:     true,
			Allergens:   []string{"dairy", "gluten"},
			Available:   true,
		},
		{
			ID:          3,
			Name:        "Strawberry Fields",
			Description: "Fresh strawberry ice cream with real strawberry pieces",
			Price:       price("4.75"),
			Category:    "Fruit",
			Image:       "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=400&h=300&fit=crop",
			Popular:     false,
			Allergens:   []string{"dairy"},
			Available:   true,
		},
		{
			ID:          4,
			Name:        "Mint Chocolate Chip",
			Description: "Cool mint ice cream with premium dark chocolate chips",
			Price:       price("4.95"),
			Category:    "Classic",
			Image:       "https://images.unsplash.com/photo-1551024506-0bccd828d307?w=400&h=300&fit=crop",
			Popular:     true,
			Allergens:   []string{"dairy"},
			Available:   true,
		},
		{
			ID:          5,
			Name:        "Salted Caramel Swirl",
			Description: "Creamy caramel ice cream with ribbons of salted caramel",
			Price:       price("5.50"),
			Category:    "Premium",
			Image:       "https://images.unsplash.com/photo-1546549032-9571cd6b27df?w=400&h=300&fit=crop",
			Popular:     true,
			Allergens:   []string{"dairy"},
			Available:   true,
		},
		{
			ID:          6,
			Name:        "Cookies & Cream",
			Description: "Vanilla ice cream loaded with chocolate cookie pieces",
			Price:       price("5.00"),
			Category:    "Classic",
			Image:       "https://images.unsplash.com/photo-1497034825429-c343d7c6a68f?w=400&h=300&fit=crop",
			Popular:     true,
			Allergens:   []string{"dairy", "gluten"},
			Available:   true,
		},
		{
			ID:          7,
			Name:        "Pistachio Gelato",
			Description: "Authentic Italian-style pistachio gelato with real nuts",
			Price:       price("6.25"),
			Category:    "Premium",
			Image:       "https://images.unsplash.com/photo-1488900128323-21503983a07e?w=400&h=300&fit=crop",
			Popular:     false,
			Allergens:   []string{"dairy", "nuts"},
			Available:   true,
		},
		{
			ID:          8,
			Name:        "Rocky Road",
			Description: "Chocolate ice cream with marshmallows and almonds",
			Price:       price("5.75"),
			Category:    "Chocolate",
			Image:       "https://images.unsplash.com/photo-1567206563064-6f60f40a2b57?w=400&h=300&fit=crop",
			Popular:     false,
			Allergens:   []string{"dairy", "nuts"},
			Available:   true,
		},
	}
}

func defaultSizes() []models.SizeOption {
	return []models.SizeOption{
		{ID: "single", Name: "Single Scoop", Multiplier: price("1")},
		{ID: "double", Name: "Double Scoop", Multiplier: price("1.8")},
		{ID: "triple", Name: "Triple Scoop", Multiplier: price("2.5")},
	}
}

func defaultContainers() []models.ContainerOption {
	return []models.ContainerOption{
		{ID: "cone", Name: "Waffle Cone", ExtraCost: price("0.50")},
		{ID: "cup", Name: "Cup", ExtraCost: price("0")},
		{ID: "bowl", Name: "Waffle Bowl", ExtraCost: price("1.00")},
	}
}

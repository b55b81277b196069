package repositories

import (
	"context"
	"fmt"

	"ice-cream-shop/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresCatalogRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCatalogRepository(db *pgxpool.Pool) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) GetFlavors(ctx context.Context) ([]models.CatalogItem, error) {
	query := `SELECT id, name, description, COALESCE(image_url, ''), price::text, category,
	                 allergens, is_popular, is_available
	          FROM flavors ORDER BY sort_order, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query flavors: %w", err)
	}
	defer rows.Close()

	flavors := []models.CatalogItem{}
	for rows.Next() {
		var f models.CatalogItem
		var rawPrice string
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Image, &rawPrice, &f.Category,
			&f.Allergens, &f.Popular, &f.Available); err != nil {
			return nil, fmt.Errorf("scan flavor: %w", err)
		}
		if f.Price, err = decimal.NewFromString(rawPrice); err != nil {
			return nil, fmt.Errorf("flavor %d price %q: %w", f.ID, rawPrice, err)
		}
		flavors = append(flavors, f)
	}
	return flavors, rows.Err()
}

func (r *PostgresCatalogRepository) GetSizeOptions(ctx context.Context) ([]models.SizeOption, error) {
	query := `SELECT id, name, multiplier::text FROM size_options ORDER BY sort_order, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query size options: %w", err)
	}
	defer rows.Close()

	sizes := []models.SizeOption{}
	for rows.Next() {
		var s models.SizeOption
		var raw string
		if err := rows.Scan(&s.ID, &s.Name, &raw); err != nil {
			return nil, fmt.Errorf("scan size option: %w", err)
		}
		if s.Multiplier, err = decimal.NewFromString(raw); err != nil {
			return nil, fmt.Errorf("size %s multiplier %q: %w", s.ID, raw, err)
		}
		sizes = append(sizes, s)
	}
	return sizes, rows.Err()
}

func (r *PostgresCatalogRepository) GetContainerOptions(ctx context.Context) ([]models.ContainerOption, error) {
	query := `SELECT id, name, extra_cost::text FROM container_options ORDER BY sort_order, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query container options: %w", err)
	}
	defer rows.Close()

	containers := []models.ContainerOption{}
	for rows.Next() {
		var c models.ContainerOption
		var raw string
		if err := rows.Scan(&c.ID, &c.Name, &raw); err != nil {
			return nil, fmt.Errorf("scan container option: %w", err)
		}
		if c.ExtraCost, err = decimal.NewFromString(raw); err != nil {
			return nil, fmt.Errorf("container %s extra cost %q: %w", c.ID, raw, err)
		}
		containers = append(containers, c)
	}
	return containers, rows.Err()
}

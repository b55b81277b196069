package services

import (
	"context"
	"fmt"
	"strings"

	"ice-cream-shop/models"
	"ice-cream-shop/repositories"
)

const (
	AllCategories    = "All"
	DefaultSize      = "single"
	DefaultContainer = "cup"
)

// MenuService holds the catalog snapshot taken at startup.
type MenuService struct {
	flavors []models.CatalogItem
	options models.Options
}

func NewMenuService(ctx context.Context, repo repositories.CatalogRepository) (*MenuService, error) {
	flavors, err := repo.GetFlavors(ctx)
	if err != nil {
		return nil, fmt.Errorf("load flavors: %w", err)
	}
	sizes, err := repo.GetSizeOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load size options: %w", err)
	}
	containers, err := repo.GetContainerOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load container options: %w", err)
	}

	return &MenuService{
		flavors: flavors,
		options: models.Options{Sizes: sizes, Containers: containers},
	}, nil
}

// Flavors lists available flavors matching category and a case-insensitive
// search over name and description. An empty category or "All" matches all.
func (s *MenuService) Flavors(category, search string) []models.CatalogItem {
	search = strings.ToLower(strings.TrimSpace(search))

	result := []models.CatalogItem{}
	for _, f := range s.flavors {
		if !f.Available {
			continue
		}
		if category != "" && category != AllCategories && f.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(f.Name), search) &&
			!strings.Contains(strings.ToLower(f.Description), search) {
			continue
		}
		result = append(result, f)
	}
	return result
}

func (s *MenuService) Flavor(id int) (models.CatalogItem, error) {
	for _, f := range s.flavors {
		if f.ID == id {
			return f, nil
		}
	}
	return models.CatalogItem{}, fmt.Errorf("flavor %d: %w", id, repositories.ErrNotFound)
}

// Categories returns "All" followed by each distinct category in menu order.
func (s *MenuService) Categories() []string {
	seen := map[string]bool{}
	categories := []string{AllCategories}
	for _, f := range s.flavors {
		if !seen[f.Category] {
			seen[f.Category] = true
			categories = append(categories, f.Category)
		}
	}
	return categories
}

func (s *MenuService) Options() models.Options {
	return s.options
}

// Quote resolves ids against the menu tables and prices the configuration.
// Empty size and container fall back to a single scoop in a cup, and a zero
// quantity to one.
func (s *MenuService) Quote(flavorID int, sizeID, containerID string, quantity int) (models.LineCandidate, error) {
	flavor, err := s.Flavor(flavorID)
	if err != nil {
		return models.LineCandidate{}, err
	}
	if !flavor.Available {
		return models.LineCandidate{}, fmt.Errorf("%s: %w", flavor.Name, ErrUnavailable)
	}

	if sizeID == "" {
		sizeID = DefaultSize
	}
	if containerID == "" {
		containerID = DefaultContainer
	}
	if quantity == 0 {
		quantity = 1
	}

	size, ok := s.options.Size(sizeID)
	if !ok {
		return models.LineCandidate{}, fmt.Errorf("%w: %q", ErrUnknownSize, sizeID)
	}
	container, ok := s.options.Container(containerID)
	if !ok {
		return models.LineCandidate{}, fmt.Errorf("%w: %q", ErrUnknownContainer, containerID)
	}

	return QuoteLine(flavor, size, container, quantity)
}

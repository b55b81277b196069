package services

import (
	"fmt"

	"ice-cream-shop/models"

	"github.com/shopspring/decimal"
)

// CentPlaces is the number of decimal places every resolved price carries.
const CentPlaces = 2

// MaxLineQuantity caps the quantity of a single cart line.
const MaxLineQuantity = 99

// ResolveUnitPrice returns basePrice × size multiplier + container surcharge,
// rounded to cents. The same inputs always give the same price.
func ResolveUnitPrice(basePrice decimal.Decimal, size models.SizeOption, container models.ContainerOption) (decimal.Decimal, error) {
	if basePrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: base price %s is negative", ErrInvalidPrice, basePrice)
	}
	if !size.Multiplier.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: size %q multiplier %s is not positive", ErrInvalidPrice, size.ID, size.Multiplier)
	}
	if container.ExtraCost.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: container %q surcharge %s is negative", ErrInvalidPrice, container.ID, container.ExtraCost)
	}

	return basePrice.Mul(size.Multiplier).Add(container.ExtraCost).Round(CentPlaces), nil
}

func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// QuoteLine prices a flavor configuration and snapshots the display fields a
// cart line keeps for its lifetime.
func QuoteLine(item models.CatalogItem, size models.SizeOption, container models.ContainerOption, quantity int) (models.LineCandidate, error) {
	if quantity < 1 || quantity > MaxLineQuantity {
		return models.LineCandidate{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	unitPrice, err := ResolveUnitPrice(item.Price, size, container)
	if err != nil {
		return models.LineCandidate{}, err
	}

	return models.LineCandidate{
		CatalogID:     item.ID,
		SizeID:        size.ID,
		ContainerID:   container.ID,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		BasePrice:     item.Price,
		Name:          item.Name,
		Image:         item.Image,
		SizeName:      size.Name,
		ContainerName: container.Name,
		Allergens:     append([]string(nil), item.Allergens...),
	}, nil
}

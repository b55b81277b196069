package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineKey is the merge identity of a cart line. Two lines with the same key
// are the same line.
type LineKey struct {
	CatalogID   int    `json:"catalog_id"`
	SizeID      string `json:"size_id"`
	ContainerID string `json:"container_id"`
}

func (k LineKey) String() string {
	return fmt.Sprintf("%d-%s-%s", k.CatalogID, k.SizeID, k.ContainerID)
}

// LineCandidate is a fully priced line waiting to be added to a cart.
// Display fields are snapshots taken when the candidate was quoted.
type LineCandidate struct {
	CatalogID     int             `json:"catalog_id"`
	SizeID        string          `json:"size_id"`
	ContainerID   string          `json:"container_id"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	BasePrice     decimal.Decimal `json:"base_price"`
	Name          string          `json:"name"`
	Image         string          `json:"image"`
	SizeName      string          `json:"size_name"`
	ContainerName string          `json:"container_name"`
	Allergens     []string        `json:"allergens"`
}

func (c LineCandidate) Key() LineKey {
	return LineKey{CatalogID: c.CatalogID, SizeID: c.SizeID, ContainerID: c.ContainerID}
}

type LineItem struct {
	CartID        string          `json:"cart_id"`
	CatalogID     int             `json:"catalog_id"`
	SizeID        string          `json:"size_id"`
	ContainerID   string          `json:"container_id"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	BasePrice     decimal.Decimal `json:"base_price"`
	Name          string          `json:"name"`
	Image         string          `json:"image"`
	SizeName      string          `json:"size_name"`
	ContainerName string          `json:"container_name"`
	Allergens     []string        `json:"allergens"`
}

func (l LineItem) Key() LineKey {
	return LineKey{CatalogID: l.CatalogID, SizeID: l.SizeID, ContainerID: l.ContainerID}
}

// LineTotal is UnitPrice × Quantity.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Cart struct {
	Items []LineItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func EmptyCart() Cart {
	return Cart{Items: []LineItem{}, Total: decimal.Zero}
}

// Clone returns a deep copy so callers can never reach the store's lines.
func (c Cart) Clone() Cart {
	items := make([]LineItem, len(c.Items))
	for i, item := range c.Items {
		item.Allergens = append([]string(nil), item.Allergens...)
		items[i] = item
	}
	return Cart{Items: items, Total: c.Total}
}

func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

type CartResponse struct {
	Items     []LineItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

func NewCartResponse(c Cart) CartResponse {
	return CartResponse{Items: c.Items, Total: c.Total, ItemCount: c.ItemCount()}
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"
)

type OrderSummary struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	OrderType string          `json:"order_type"`
	OrderInfo []string        `json:"order_info"`
}

// OrderConfirmation is returned by the mock checkout. Nothing is persisted.
type OrderConfirmation struct {
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	OrderType  string          `json:"order_type"`
	Total      decimal.Decimal `json:"total"`
	PlacedAt   time.Time       `json:"placed_at"`
	ClearAfter string          `json:"clear_after"`
}

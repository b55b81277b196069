package models

import "github.com/shopspring/decimal"

type CatalogItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Allergens   []string        `json:"allergens"`
	Popular     bool            `json:"popular"`
	Available   bool            `json:"available"`
}

type SizeOption struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

type ContainerOption struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	ExtraCost decimal.Decimal `json:"extra_cost"`
}

// Options is the pair of configuration tables offered for every flavor.
type Options struct {
	Sizes      []SizeOption      `json:"sizes"`
	Containers []ContainerOption `json:"containers"`
}

func (o Options) Size(id string) (SizeOption, bool) {
	for _, s := range o.Sizes {
		if s.ID == id {
			return s, true
		}
	}
	return SizeOption{}, false
}

func (o Options) Container(id string) (ContainerOption, bool) {
	for _, c := range o.Containers {
		if c.ID == id {
			return c, true
		}
	}
	return ContainerOption{}, false
}

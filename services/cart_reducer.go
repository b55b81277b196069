package services

import (
	"ice-cream-shop/models"

	"github.com/shopspring/decimal"
)

// Action is one cart transition. The set is closed: AddItem, RemoveItem,
// UpdateQuantity and ClearCart.
type Action interface {
	Kind() string
	isAction()
}

// AddItem carries the CartID the line gets if it is appended. The ID is
// ignored when the candidate merges into an existing line.
type AddItem struct {
	CartID string
	Line   models.LineCandidate
}

type RemoveItem struct {
	CartID string
}

type UpdateQuantity struct {
	CartID   string
	Quantity int
}

type ClearCart struct{}

func (AddItem) Kind() string        { return "add_item" }
func (RemoveItem) Kind() string     { return "remove_item" }
func (UpdateQuantity) Kind() string { return "update_quantity" }
func (ClearCart) Kind() string      { return "clear_cart" }

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (ClearCart) isAction()      {}

// Reduce applies action to state and returns the next cart. state is never
// modified and the returned total is always recomputed from its lines.
func Reduce(state models.Cart, action Action) models.Cart {
	switch a := action.(type) {
	case AddItem:
		return addItem(state, a)
	case RemoveItem:
		return removeItem(state, a.CartID)
	case UpdateQuantity:
		if a.Quantity <= 0 {
			return removeItem(state, a.CartID)
		}
		return updateQuantity(state, a.CartID, a.Quantity)
	case ClearCart:
		return models.EmptyCart()
	default:
		return withTotal(state.Clone().Items)
	}
}

func addItem(state models.Cart, a AddItem) models.Cart {
	items := state.Clone().Items
	key := a.Line.Key()

	for i := range items {
		if items[i].Key() == key {
			items[i].Quantity += a.Line.Quantity
			return withTotal(items)
		}
	}

	items = append(items, models.LineItem{
		CartID:        a.CartID,
		CatalogID:     a.Line.CatalogID,
		SizeID:        a.Line.SizeID,
		ContainerID:   a.Line.ContainerID,
		Quantity:      a.Line.Quantity,
		UnitPrice:     a.Line.UnitPrice,
		BasePrice:     a.Line.BasePrice,
		Name:          a.Line.Name,
		Image:         a.Line.Image,
		SizeName:      a.Line.SizeName,
		ContainerName: a.Line.ContainerName,
		Allergens:     append([]string(nil), a.Line.Allergens...),
	})
	return withTotal(items)
}

func removeItem(state models.Cart, cartID string) models.Cart {
	items := make([]models.LineItem, 0, len(state.Items))
	for _, item := range state.Clone().Items {
		if item.CartID != cartID {
			items = append(items, item)
		}
	}
	return withTotal(items)
}

func updateQuantity(state models.Cart, cartID string, quantity int) models.Cart {
	items := state.Clone().Items
	for i := range items {
		if items[i].CartID == cartID {
			items[i].Quantity = quantity
		}
	}
	return withTotal(items)
}

func withTotal(items []models.LineItem) models.Cart {
	return models.Cart{Items: items, Total: CartTotal(items)}
}

// CartTotal sums UnitPrice × Quantity over items.
func CartTotal(items []models.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

package services

import (
	"fmt"
	"sync"

	"ice-cream-shop/models"

	"go.uber.org/zap"
)

// CartStore owns one shopping session's cart. It is the only code path that
// mutates cart lines; every method swaps in the reducer's result in a single
// step, so readers never see a total that disagrees with the lines.
type CartStore struct {
	mu     sync.RWMutex
	state  models.Cart
	ids    IDGenerator
	logger *zap.Logger
}

func NewCartStore(ids IDGenerator, logger *zap.Logger) *CartStore {
	if ids == nil {
		ids = NewSequenceIDGenerator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartStore{
		state:  models.EmptyCart(),
		ids:    ids,
		logger: logger,
	}
}

// Add merges candidate into the line with the same key, or appends it as a
// new line. On merge the existing line keeps its price and display snapshot.
// A merge that would take the line past MaxLineQuantity is rejected.
func (s *CartStore) Add(candidate models.LineCandidate) (models.Cart, error) {
	if candidate.Quantity < 1 || candidate.Quantity > MaxLineQuantity {
		return s.Cart(), fmt.Errorf("%w: got %d", ErrInvalidQuantity, candidate.Quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	action := AddItem{Line: candidate}
	if existing, ok := findByKey(s.state, candidate.Key()); ok {
		if existing.Quantity > MaxLineQuantity-candidate.Quantity {
			return s.state.Clone(), fmt.Errorf("%w: line %s would hold %d",
				ErrInvalidQuantity, existing.CartID, existing.Quantity+candidate.Quantity)
		}
	} else {
		action.CartID = s.ids.NextID(candidate.Key())
	}
	return s.apply(action), nil
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or less
// removes the line. Unknown cart IDs are ignored.
func (s *CartStore) UpdateQuantity(cartID string, quantity int) (models.Cart, error) {
	if quantity > MaxLineQuantity {
		return s.Cart(), fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.apply(RemoveItem{CartID: cartID}), nil
	}
	return s.apply(UpdateQuantity{CartID: cartID, Quantity: quantity}), nil
}

func (s *CartStore) Remove(cartID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apply(RemoveItem{CartID: cartID})
}

func (s *CartStore) Clear() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apply(ClearCart{})
}

// Cart returns a copy of the current cart.
func (s *CartStore) Cart() models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone()
}

func (s *CartStore) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.ItemCount()
}

// Line looks up a single line by its cart ID.
func (s *CartStore) Line(cartID string) (models.LineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.state.Items {
		if item.CartID == cartID {
			item.Allergens = append([]string(nil), item.Allergens...)
			return item, true
		}
	}
	return models.LineItem{}, false
}

// apply must be called with mu held.
func (s *CartStore) apply(action Action) models.Cart {
	s.state = Reduce(s.state, action)
	s.logger.Debug("cart transition",
		zap.String("action", action.Kind()),
		zap.Int("lines", len(s.state.Items)),
		zap.String("total", s.state.Total.StringFixed(CentPlaces)),
	)
	return s.state.Clone()
}

func findByKey(c models.Cart, key models.LineKey) (models.LineItem, bool) {
	for _, item := range c.Items {
		if item.Key() == key {
			return item, true
		}
	}
	return models.LineItem{}, false
}

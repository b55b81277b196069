package services

import (
	"fmt"
	"strings"
	"time"

	"ice-cream-shop/models"
	"ice-cream-shop/repositories"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Scheduler runs f after d. time.AfterFunc satisfies it.
type Scheduler func(d time.Duration, f func())

func AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// CheckoutService is the mock order flow. It reads the cart, never records
// an order, and empties the cart a short while after confirming.
type CheckoutService struct {
	cart       *CartStore
	taxRate    decimal.Decimal
	clearDelay time.Duration
	schedule   Scheduler
	mailer     Mailer
	now        func() time.Time
	logger     *zap.Logger
}

func NewCheckoutService(cart *CartStore, taxRate decimal.Decimal, clearDelay time.Duration, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		cart:       cart,
		taxRate:    taxRate,
		clearDelay: clearDelay,
		schedule:   AfterFunc,
		now:        time.Now,
		logger:     logger,
	}
}

// WithMailer sends a confirmation to customers who leave an email address.
func (s *CheckoutService) WithMailer(mailer Mailer) *CheckoutService {
	s.mailer = mailer
	return s
}

// WithScheduler replaces how the delayed cart clear is run.
func (s *CheckoutService) WithScheduler(schedule Scheduler) *CheckoutService {
	s.schedule = schedule
	return s
}

func (s *CheckoutService) Summary(orderType string) (models.OrderSummary, error) {
	orderType, err := normalizeOrderType(orderType)
	if err != nil {
		return models.OrderSummary{}, err
	}
	return s.summarize(s.cart.Cart(), orderType), nil
}

func (s *CheckoutService) summarize(cart models.Cart, orderType string) models.OrderSummary {
	tax := cart.Total.Mul(s.taxRate).Round(CentPlaces)
	return models.OrderSummary{
		Subtotal:  cart.Total,
		TaxRate:   s.taxRate,
		Tax:       tax,
		Total:     cart.Total.Add(tax),
		ItemCount: cart.ItemCount(),
		OrderType: orderType,
		OrderInfo: orderInfo(orderType),
	}
}

// PlaceOrder validates the request against the current cart and confirms it.
func (s *CheckoutService) PlaceOrder(req models.CheckoutRequest) (models.OrderConfirmation, error) {
	cart := s.cart.Cart()
	if cart.IsEmpty() {
		return models.OrderConfirmation{}, ErrEmptyCart
	}

	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		return models.OrderConfirmation{}, ErrMissingContact
	}

	orderType, err := normalizeOrderType(req.OrderType)
	if err != nil {
		return models.OrderConfirmation{}, err
	}

	summary := s.summarize(cart, orderType)

	s.logger.Info("order placed",
		zap.String("order_type", orderType),
		zap.Int("items", summary.ItemCount),
		zap.String("total", summary.Total.StringFixed(CentPlaces)),
	)

	s.schedule(s.clearDelay, func() {
		s.cart.Clear()
		s.logger.Debug("cart cleared after order")
	})

	confirmation := models.OrderConfirmation{
		Name:       name,
		Phone:      phone,
		OrderType:  orderType,
		Total:      summary.Total,
		PlacedAt:   s.now(),
		ClearAfter: s.clearDelay.String(),
	}

	// A failed confirmation email does not fail the order.
	if email := strings.TrimSpace(req.Email); email != "" && s.mailer != nil {
		if err := s.mailer.SendOrderConfirmation(email, confirmation, cart); err != nil {
			s.logger.Warn("order confirmation email failed", zap.Error(err))
		}
	}

	return confirmation, nil
}

func normalizeOrderType(orderType string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(orderType)) {
	case "", models.OrderTypePickup:
		return models.OrderTypePickup, nil
	case models.OrderTypeDelivery:
		return models.OrderTypeDelivery, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOrderType, orderType)
	}
}

func orderInfo(orderType string) []string {
	if orderType == models.OrderTypeDelivery {
		return []string{
			"Delivery within 3 miles: $3.99",
			"Estimated time: 30-45 minutes",
		}
	}
	return []string{
		repositories.ShopInfo().Address,
		"Ready in 15-20 minutes",
	}
}

package services

import "errors"

var (
	ErrInvalidQuantity  = errors.New("quantity must be between 1 and 99")
	ErrInvalidPrice     = errors.New("invalid price configuration")
	ErrUnknownSize      = errors.New("unknown size option")
	ErrUnknownContainer = errors.New("unknown container option")
	ErrUnavailable      = errors.New("flavor is not available")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrMissingContact   = errors.New("name and phone are required")
	ErrInvalidOrderType = errors.New("order type must be pickup or delivery")
	ErrMissingFields    = errors.New("name, email and message are required")
)

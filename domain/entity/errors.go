package entity

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInventoryNotFound   = errors.New("inventory item not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrPaymentNotConfirmed = errors.New("payment not confirmed")
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrEmptyOrder          = errors.New("order must contain at least one item")
)

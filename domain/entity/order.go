package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	// OrderStatusDelivered is declared for completeness; no operation
	// currently drives an order into it.
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem is a line of an order. LinePrice is derived once at
// construction (unit price × quantity) and never recomputed.
type OrderItem struct {
	Book      Book            `json:"book"`
	Quantity  int             `json:"quantity"`
	LinePrice decimal.Decimal `json:"line_price"`
}

// NewOrderItem builds an order line for a positive quantity.
func NewOrderItem(book Book, quantity int) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	return OrderItem{
		Book:      book,
		Quantity:  quantity,
		LinePrice: book.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Order is the aggregate root. Items are fixed at construction; Total is
// the sum of the line prices at creation time and is never recomputed.
// Status only moves forward: NEW → CONFIRMED → SHIPPED.
type Order struct {
	ID       string          `json:"id"`
	Customer Customer        `json:"customer"`
	Items    []OrderItem     `json:"items"`
	Status   OrderStatus     `json:"status"`
	Total    decimal.Decimal `json:"total"`
}

// NewOrder creates an order in NEW status with its total computed eagerly.
func NewOrder(id string, customer Customer, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LinePrice)
	}
	return &Order{
		ID:       id,
		Customer: customer,
		Items:    items,
		Status:   OrderStatusNew,
		Total:    total,
	}, nil
}

// Confirm moves the order NEW → CONFIRMED. The payment flag is trusted as
// computed by the caller; the aggregate never talks to the payment service.
// A failed transition leaves the status unchanged.
func (o *Order) Confirm(paymentConfirmed bool) error {
	if !paymentConfirmed {
		return fmt.Errorf("%w: order %s", ErrPaymentNotConfirmed, o.ID)
	}
	if o.Status != OrderStatusNew {
		return fmt.Errorf("%w: cannot confirm order %s in status %s", ErrInvalidTransition, o.ID, o.Status)
	}
	o.Status = OrderStatusConfirmed
	return nil
}

// Ship moves the order CONFIRMED → SHIPPED. A failed transition leaves the
// status unchanged.
func (o *Order) Ship() error {
	if o.Status != OrderStatusConfirmed {
		return fmt.Errorf("%w: cannot ship order %s in status %s", ErrInvalidTransition, o.ID, o.Status)
	}
	o.Status = OrderStatusShipped
	return nil
}

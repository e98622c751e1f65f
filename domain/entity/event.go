package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderEventType string

const (
	OrderEventPlaced    OrderEventType = "placed"
	OrderEventConfirmed OrderEventType = "confirmed"
	OrderEventShipped   OrderEventType = "shipped"
)

// OrderEvent is the lifecycle notification published after an order
// mutation has been persisted.
type OrderEvent struct {
	Type       OrderEventType  `json:"type"`
	OrderID    string          `json:"order_id"`
	CustomerID string          `json:"customer_id"`
	Status     OrderStatus     `json:"status"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewOrderEvent snapshots the order's current state into an event.
func NewOrderEvent(eventType OrderEventType, order *Order) OrderEvent {
	return OrderEvent{
		Type:       eventType,
		OrderID:    order.ID,
		CustomerID: order.Customer.ID,
		Status:     order.Status,
		Total:      order.Total,
		OccurredAt: time.Now(),
	}
}

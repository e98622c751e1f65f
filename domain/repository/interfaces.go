package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sokoide/bookstore/domain/entity"
)

// OrderRepository stores orders keyed by id. Save upserts.
type OrderRepository interface {
	Save(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
}

// InventoryRepository stores inventory items keyed by product id. Save and
// Update both upsert; no distinct create/update semantics are enforced.
type InventoryRepository interface {
	FindByProductID(ctx context.Context, productID string) (*entity.InventoryItem, error)
	Save(ctx context.Context, item *entity.InventoryItem) error
	Update(ctx context.Context, item *entity.InventoryItem) error
}

// PaymentService is the external payment boundary. The only in-repo
// implementation is a mock that approves everything.
type PaymentService interface {
	VerifyPayment(ctx context.Context, paymentID string, amount decimal.Decimal) (bool, error)
}

// OrderEventPublisher notifies downstream consumers of order lifecycle
// changes.
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event entity.OrderEvent) error
}

// IDGenerator produces identifiers for new aggregates.
type IDGenerator interface {
	GenerateID() string
}

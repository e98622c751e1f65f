package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sokoide/bookstore/domain/entity"
)

func TestLogPublisher_PublishOrderEvent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	pub := NewLogPublisher(zap.New(core))

	event := entity.OrderEvent{
		Type:       entity.OrderEventShipped,
		OrderID:    "order-1",
		CustomerID: "customer-1",
		Status:     entity.OrderStatusShipped,
		Total:      decimal.NewFromInt(4200),
		OccurredAt: time.Now(),
	}

	require.NoError(t, pub.PublishOrderEvent(context.Background(), event))

	entries := logs.FilterMessage("order event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "shipped", fields["type"])
	assert.Equal(t, "order-1", fields["order_id"])
	assert.Equal(t, "SHIPPED", fields["status"])
}

package messaging

import (
	"context"

	"go.uber.org/zap"

	"github.com/sokoide/bookstore/domain/entity"
	"github.com/sokoide/bookstore/domain/repository"
)

type logPublisher struct {
	logger *zap.Logger
}

// NewLogPublisher creates an OrderEventPublisher that only logs events.
// Used when no broker is wired in, e.g. by the demo driver.
func NewLogPublisher(logger *zap.Logger) repository.OrderEventPublisher {
	return &logPublisher{logger: logger}
}

func (p *logPublisher) PublishOrderEvent(ctx context.Context, event entity.OrderEvent) error {
	p.logger.Info("order event",
		zap.String("type", string(event.Type)),
		zap.String("order_id", event.OrderID),
		zap.String("customer_id", event.CustomerID),
		zap.String("status", event.Status.String()),
		zap.String("total", event.Total.String()),
	)
	return nil
}

package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/sokoide/bookstore/domain/entity"
	"github.com/sokoide/bookstore/domain/repository"
	"github.com/sokoide/bookstore/domain/service"
)

// PlaceOrderUsecase persists a newly constructed order. The shipping cost
// is informational only: it is logged, not stored on the order, and no
// stock check happens at placement time.
type PlaceOrderUsecase struct {
	orderRepo repository.OrderRepository
	shipping  *service.ShippingCalculator
	events    repository.OrderEventPublisher
	logger    *zap.Logger
}

func NewPlaceOrderUsecase(
	repo repository.OrderRepository,
	shipping *service.ShippingCalculator,
	events repository.OrderEventPublisher,
	logger *zap.Logger,
) *PlaceOrderUsecase {
	return &PlaceOrderUsecase{
		orderRepo: repo,
		shipping:  shipping,
		events:    events,
		logger:    logger,
	}
}

func (u *PlaceOrderUsecase) Execute(ctx context.Context, order *entity.Order) error {
	shippingCost := u.shipping.Calculate(order)
	u.logger.Info("placing order",
		zap.String("order_id", order.ID),
		zap.String("customer_id", order.Customer.ID),
		zap.String("total", order.Total.String()),
		zap.String("estimated_shipping_cost", shippingCost.String()),
	)

	if err := u.orderRepo.Save(ctx, order); err != nil {
		return err
	}

	return u.events.PublishOrderEvent(ctx, entity.NewOrderEvent(entity.OrderEventPlaced, order))
}

package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/sokoide/bookstore/domain/entity"
	"github.com/sokoide/bookstore/domain/repository"
	"github.com/sokoide/bookstore/domain/service"
)

// ShipOrderUsecase reserves stock for every line of an order and moves the
// order CONFIRMED → SHIPPED. Reservation is not atomic across items: when
// a later line fails, earlier reservations stay applied and are not
// released.
type ShipOrderUsecase struct {
	orderRepo repository.OrderRepository
	inventory *service.InventoryService
	events    repository.OrderEventPublisher
	logger    *zap.Logger
}

func NewShipOrderUsecase(
	repo repository.OrderRepository,
	inventory *service.InventoryService,
	events repository.OrderEventPublisher,
	logger *zap.Logger,
) *ShipOrderUsecase {
	return &ShipOrderUsecase{
		orderRepo: repo,
		inventory: inventory,
		events:    events,
		logger:    logger,
	}
}

func (u *ShipOrderUsecase) Execute(ctx context.Context, orderID string) error {
	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	for _, item := range order.Items {
		if err := u.inventory.ReserveStock(ctx, item.Book.ID, item.Quantity); err != nil {
			u.logger.Warn("stock reservation failed",
				zap.String("order_id", orderID),
				zap.String("product_id", item.Book.ID),
				zap.Int("quantity", item.Quantity),
				zap.Error(err),
			)
			return err
		}
	}

	if err := order.Ship(); err != nil {
		return err
	}

	if err := u.orderRepo.Save(ctx, order); err != nil {
		return err
	}

	u.logger.Info("order shipped", zap.String("order_id", orderID))
	return u.events.PublishOrderEvent(ctx, entity.NewOrderEvent(entity.OrderEventShipped, order))
}

package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/sokoide/bookstore/domain/entity"
	"github.com/sokoide/bookstore/domain/repository"
)

// ConfirmOrderUsecase verifies payment for an order's total and moves the
// order NEW → CONFIRMED. A declined verification leaves the order NEW.
type ConfirmOrderUsecase struct {
	orderRepo repository.OrderRepository
	payments  repository.PaymentService
	events    repository.OrderEventPublisher
	logger    *zap.Logger
}

func NewConfirmOrderUsecase(
	repo repository.OrderRepository,
	payments repository.PaymentService,
	events repository.OrderEventPublisher,
	logger *zap.Logger,
) *ConfirmOrderUsecase {
	return &ConfirmOrderUsecase{
		orderRepo: repo,
		payments:  payments,
		events:    events,
		logger:    logger,
	}
}

func (u *ConfirmOrderUsecase) Execute(ctx context.Context, orderID, paymentID string) error {
	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	confirmed, err := u.payments.VerifyPayment(ctx, paymentID, order.Total)
	if err != nil {
		return err
	}

	if err := order.Confirm(confirmed); err != nil {
		u.logger.Warn("order confirmation rejected",
			zap.String("order_id", orderID),
			zap.String("payment_id", paymentID),
			zap.Error(err),
		)
		return err
	}

	if err := u.orderRepo.Save(ctx, order); err != nil {
		return err
	}

	u.logger.Info("order confirmed",
		zap.String("order_id", orderID),
		zap.String("payment_id", paymentID),
	)
	return u.events.PublishOrderEvent(ctx, entity.NewOrderEvent(entity.OrderEventConfirmed, order))
}

package payment

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MockPaymentService approves every verification request. A real payment
// gateway is an external collaborator outside this module.
type MockPaymentService struct {
	logger *zap.Logger
}

func NewMockPaymentService(logger *zap.Logger) *MockPaymentService {
	return &MockPaymentService{logger: logger}
}

func (s *MockPaymentService) VerifyPayment(ctx context.Context, paymentID string, amount decimal.Decimal) (bool, error) {
	s.logger.Info("verifying payment",
		zap.String("payment_id", paymentID),
		zap.String("amount", amount.String()),
	)
	return true, nil
}

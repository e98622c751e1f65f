package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sokoide/bookstore/domain/entity"
)

type mockOrderRepository struct {
	orders map[string]*entity.Order
	saves  int
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[string]*entity.Order)}
}

func (m *mockOrderRepository) Save(ctx context.Context, order *entity.Order) error {
	m.saves++
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrOrderNotFound, id)
	}
	return order, nil
}

type mockInventoryRepository struct {
	items map[string]*entity.InventoryItem
}

func newMockInventoryRepository(items ...*entity.InventoryItem) *mockInventoryRepository {
	m := &mockInventoryRepository{items: make(map[string]*entity.InventoryItem)}
	for _, item := range items {
		m.items[item.ProductID] = item
	}
	return m
}

func (m *mockInventoryRepository) FindByProductID(ctx context.Context, productID string) (*entity.InventoryItem, error) {
	item, ok := m.items[productID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrInventoryNotFound, productID)
	}
	return item, nil
}

func (m *mockInventoryRepository) Save(ctx context.Context, item *entity.InventoryItem) error {
	m.items[item.ProductID] = item
	return nil
}

func (m *mockInventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return m.Save(ctx, item)
}

type mockPaymentService struct {
	result     bool
	err        error
	paymentIDs []string
	amounts    []decimal.Decimal
}

func (m *mockPaymentService) VerifyPayment(ctx context.Context, paymentID string, amount decimal.Decimal) (bool, error) {
	m.paymentIDs = append(m.paymentIDs, paymentID)
	m.amounts = append(m.amounts, amount)
	return m.result, m.err
}

type mockEventPublisher struct {
	events []entity.OrderEvent
}

func (m *mockEventPublisher) PublishOrderEvent(ctx context.Context, event entity.OrderEvent) error {
	m.events = append(m.events, event)
	return nil
}

func testOrder(t *testing.T, id string, quantities map[string]int) *entity.Order {
	t.Helper()

	items := make([]entity.OrderItem, 0, len(quantities))
	for productID, qty := range quantities {
		book := entity.Book{
			ID:     productID,
			Title:  "A Philosophy of Software Design",
			Author: "John Ousterhout",
			Price:  decimal.NewFromInt(2000),
			ISBN:   "978-1732102200",
		}
		item, err := entity.NewOrderItem(book, qty)
		require.NoError(t, err)
		items = append(items, item)
	}

	customer := entity.Customer{
		ID:    "customer-1",
		Name:  "Saburo Sato",
		Email: "saburo@example.com",
		ShippingAddress: entity.Address{
			Street:     "3-3-3 Naka",
			City:       "Nagoya",
			PostalCode: "460-0001",
			Country:    "JP",
		},
	}
	order, err := entity.NewOrder(id, customer, items)
	require.NoError(t, err)
	return order
}

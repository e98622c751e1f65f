package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sokoide/bookstore/domain/entity"
	"github.com/sokoide/bookstore/domain/service"
	"github.com/sokoide/bookstore/infra/messaging"
	"github.com/sokoide/bookstore/infra/payment"
	"github.com/sokoide/bookstore/infra/repository"
	"github.com/sokoide/bookstore/infra/util"
	"github.com/sokoide/bookstore/usecase"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// 1. Setup Infrastructure
	orderRepo := repository.NewMemoryOrderRepository()
	inventoryRepo := repository.NewMemoryInventoryRepository()
	paymentSvc := payment.NewMockPaymentService(logger)
	events := messaging.NewLogPublisher(logger)
	idGen := &util.UUIDGenerator{}

	// 2. Setup Domain Services
	shipping := service.NewShippingCalculator()
	inventorySvc := service.NewInventoryService(inventoryRepo)

	// 3. Setup Usecases
	placeOrder := usecase.NewPlaceOrderUsecase(orderRepo, shipping, events, logger)
	confirmOrder := usecase.NewConfirmOrderUsecase(orderRepo, paymentSvc, events, logger)
	shipOrder := usecase.NewShipOrderUsecase(orderRepo, inventorySvc, events, logger)

	ctx := context.Background()

	// 4. Seed Inventory
	book := entity.Book{
		ID:     "book-001",
		Title:  "The Go Programming Language",
		Author: "Alan A. A. Donovan",
		Price:  decimal.NewFromInt(4200),
		ISBN:   "978-0134190440",
	}
	if err := inventoryRepo.Save(ctx, &entity.InventoryItem{
		ProductID:         book.ID,
		ProductType:       entity.ProductTypeBook,
		QuantityAvailable: 10,
	}); err != nil {
		log.Fatalf("Failed to seed inventory: %v", err)
	}

	// 5. Build the Order
	customer := entity.Customer{
		ID:    idGen.GenerateID(),
		Name:  "Hanako Yamada",
		Email: "hanako@example.com",
		ShippingAddress: entity.Address{
			Street:     "1-2-3 Shibuya",
			City:       "Tokyo",
			PostalCode: "150-0002",
			Country:    "JP",
		},
	}
	item, err := entity.NewOrderItem(book, 2)
	if err != nil {
		log.Fatalf("Failed to build order item: %v", err)
	}
	order, err := entity.NewOrder(idGen.GenerateID(), customer, []entity.OrderItem{item})
	if err != nil {
		log.Fatalf("Failed to build order: %v", err)
	}

	// 6. Place -> Confirm -> Ship
	if err := placeOrder.Execute(ctx, order); err != nil {
		log.Fatalf("Failed to place order: %v", err)
	}
	if err := confirmOrder.Execute(ctx, order.ID, "payment-001"); err != nil {
		log.Fatalf("Failed to confirm order: %v", err)
	}
	if err := shipOrder.Execute(ctx, order.ID); err != nil {
		log.Fatalf("Failed to ship order: %v", err)
	}

	fmt.Printf("Order %s final status: %s\n", order.ID, order.Status)
}

package service

import (
	"context"
	"fmt"

	"github.com/sokoide/bookstore/domain/entity"
	"github.com/sokoide/bookstore/domain/repository"
)

// InventoryService owns stock reservation. A successful reservation is
// permanent: there is no hold, expiry, or compensating release.
type InventoryService struct {
	repo repository.InventoryRepository
}

func NewInventoryService(repo repository.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// ReserveStock decrements the available quantity for productID by quantity
// and persists the item. It fails without mutating anything when the item
// is unknown, the quantity is not positive, or stock is insufficient.
func (s *InventoryService) ReserveStock(ctx context.Context, productID string, quantity int) error {
	if productID == "" {
		return entity.ErrInvalidProductID
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", entity.ErrInvalidQuantity, quantity)
	}

	item, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		return err
	}
	if !item.CanReserve(quantity) {
		return fmt.Errorf("%w: product %s has %d, requested %d",
			entity.ErrInsufficientStock, productID, item.QuantityAvailable, quantity)
	}

	item.Reserve(quantity)
	return s.repo.Update(ctx, item)
}

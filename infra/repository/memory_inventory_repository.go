package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/sokoide/bookstore/domain/entity"
)

// MemoryInventoryRepository is a map-backed inventory store keyed by
// product id. Save and Update are both upserts.
type MemoryInventoryRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.InventoryItem
}

func NewMemoryInventoryRepository() *MemoryInventoryRepository {
	return &MemoryInventoryRepository{items: make(map[string]*entity.InventoryItem)}
}

func (r *MemoryInventoryRepository) FindByProductID(ctx context.Context, productID string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[productID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrInventoryNotFound, productID)
	}
	return item, nil
}

func (r *MemoryInventoryRepository) Save(ctx context.Context, item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ProductID] = item
	return nil
}

func (r *MemoryInventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return r.Save(ctx, item)
}

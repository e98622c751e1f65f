package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/sokoide/bookstore/domain/entity"
)

// MemoryOrderRepository is a map-backed order store. The mutex keeps the
// map itself consistent; read-modify-write sequences across calls are the
// caller's problem.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]*entity.Order)}
}

func (r *MemoryOrderRepository) Save(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
	return nil
}

func (r *MemoryOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrOrderNotFound, id)
	}
	return order, nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sokoide/bookstore/domain/entity"
)

const inventoryKeyPrefix = "inventory:"

// RedisInventoryRepository stores inventory items as JSON values keyed by
// product id.
type RedisInventoryRepository struct {
	client *redis.Client
}

func NewRedisInventoryRepository(client *redis.Client) *RedisInventoryRepository {
	return &RedisInventoryRepository{client: client}
}

func (r *RedisInventoryRepository) FindByProductID(ctx context.Context, productID string) (*entity.InventoryItem, error) {
	body, err := r.client.Get(ctx, inventoryKeyPrefix+productID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", entity.ErrInventoryNotFound, productID)
		}
		return nil, err
	}

	var item entity.InventoryItem
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("could not unmarshal inventory item %s: %w", productID, err)
	}
	return &item, nil
}

func (r *RedisInventoryRepository) Save(ctx context.Context, item *entity.InventoryItem) error {
	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("could not marshal inventory item %s: %w", item.ProductID, err)
	}
	return r.client.Set(ctx, inventoryKeyPrefix+item.ProductID, body, 0).Err()
}

func (r *RedisInventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return r.Save(ctx, item)
}

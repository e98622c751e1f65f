package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sokoide/bookstore/domain/entity"
)

const orderKeyPrefix = "order:"

// RedisOrderRepository stores orders as JSON values keyed by order id.
type RedisOrderRepository struct {
	client *redis.Client
}

func NewRedisOrderRepository(client *redis.Client) *RedisOrderRepository {
	return &RedisOrderRepository{client: client}
}

func (r *RedisOrderRepository) Save(ctx context.Context, order *entity.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("could not marshal order %s: %w", order.ID, err)
	}
	return r.client.Set(ctx, orderKeyPrefix+order.ID, body, 0).Err()
}

func (r *RedisOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	body, err := r.client.Get(ctx, orderKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", entity.ErrOrderNotFound, id)
		}
		return nil, err
	}

	var order entity.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("could not unmarshal order %s: %w", id, err)
	}
	return &order, nil
}

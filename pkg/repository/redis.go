package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/example/platterflow/pkg/config"
	"github.com/example/platterflow/pkg/models"
)

type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisRepository{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: cfg.PoolSize,
		}),
		ttl: ttl,
	}
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *RedisRepository) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisRepository) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisRepository) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func orderKey(id uint) string {
	return fmt.Sprintf("order:%d", id)
}

func menuItemKey(id uint) string {
	return fmt.Sprintf("menu_item:%d", id)
}

func (r *RedisRepository) CacheOrder(ctx context.Context, order *models.Order) error {
	return r.SetJSON(ctx, orderKey(order.ID), order, r.ttl)
}

func (r *RedisRepository) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.GetJSON(ctx, orderKey(id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *RedisRepository) InvalidateOrder(ctx context.Context, id uint) error {
	return r.Del(ctx, orderKey(id))
}

func (r *RedisRepository) CacheMenuItem(ctx context.Context, item *models.MenuItem) error {
	return r.SetJSON(ctx, menuItemKey(item.ID), item, r.ttl)
}

func (r *RedisRepository) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.GetJSON(ctx, menuItemKey(id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *RedisRepository) InvalidateMenuItem(ctx context.Context, id uint) error {
	return r.Del(ctx, menuItemKey(id))
}

package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopease/shopease/internal/models"
)

type redisMirror struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisMirror(client *redis.Client, ttl time.Duration) Mirror {
	return &redisMirror{
		client: client,
		ttl:    ttl,
	}
}

func (m *redisMirror) Get(ctx context.Context, userID string) ([]models.CartItem, bool, error) {

	key := Key(userID)

	data, err := m.client.Get(ctx, key).Bytes()
	if err != nil {

		if err == redis.Nil {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to get key %s from redis: %w", key, err)
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cart snapshot for key %s: %w", key, err)
	}

	return items, true, nil
}

func (m *redisMirror) Set(ctx context.Context, userID string, items []models.CartItem) error {

	key := Key(userID)

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart snapshot for key %s: %w", key, err)
	}

	if err := m.client.Set(ctx, key, data, m.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}

	return nil
}

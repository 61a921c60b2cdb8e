package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetJSON 讀取 key 並解碼到 dst；key 不存在時回傳 false, nil
func GetJSON(ctx context.Context, c Cache, key string, dst any) (bool, error) {
	raw, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("GetJSON: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("GetJSON: %w", err)
	}
	return true, nil
}

func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("SetJSON: %w", err)
	}
	if err := c.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("SetJSON: %w", err)
	}
	return nil
}

package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Version 讀取版本計數，key 不存在視為 0
func Version(ctx context.Context, c Cache, key string) (int64, error) {
	n, err := c.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("Version: %w", err)
	}
	return n, nil
}

// Bump 遞增版本計數；舊版本的 key 之後不會再被讀取
func Bump(ctx context.Context, c Cache, key string) error {
	if err := c.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("Bump: %w", err)
	}
	return nil
}

// VersionedKey 組出帶版本的資料 key
func VersionedKey(key string, v int64) string {
	return fmt.Sprintf("%s:v%d", key, v)
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/JrMarcco/shipsync/internal/errs"
	"github.com/JrMarcco/shipsync/internal/repository/cache"
	"github.com/redis/go-redis/v9"
)

var _ cache.BaselineCache[struct{}] = (*BaselineRedisCache[struct{}])(nil)

// BaselineRedisCache baseline 的 redis 缓存，多实例共享
type BaselineRedisCache[S any] struct {
	client  redis.Cmdable
	key     string
	expires time.Duration
}

func (r *BaselineRedisCache[S]) Get(ctx context.Context) ([]S, error) {
	val, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// redis key 不存在
			return nil, errs.ErrBaselineCacheMiss
		}
		return nil, fmt.Errorf("[shipsync] get shipping baseline from redis error: %w", err)
	}

	var settings []S
	if err = json.Unmarshal([]byte(val), &settings); err != nil {
		return nil, fmt.Errorf("[shipsync] unmarshal shipping baseline error: %w", err)
	}
	if settings == nil {
		settings = []S{}
	}
	return settings, nil
}

func (r *BaselineRedisCache[S]) Set(ctx context.Context, settings []S) error {
	if settings == nil {
		settings = []S{}
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("[shipsync] marshal shipping baseline error: %w", err)
	}
	if err = r.client.Set(ctx, r.key, data, r.expires).Err(); err != nil {
		return fmt.Errorf("[shipsync] set shipping baseline to redis error: %w", err)
	}
	return nil
}

func (r *BaselineRedisCache[S]) Del(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("[shipsync] delete shipping baseline from redis error: %w", err)
	}
	return nil
}

func NewBaselineRedisCache[S any](rc redis.Cmdable, key string, expires time.Duration) *BaselineRedisCache[S] {
	return &BaselineRedisCache[S]{
		client:  rc,
		key:     key,
		expires: expires,
	}
}

package local

import (
	"context"
	"slices"
	"time"

	"github.com/JrMarcco/shipsync/internal/errs"
	"github.com/JrMarcco/shipsync/internal/repository/cache"
	gcache "github.com/patrickmn/go-cache"
)

var _ cache.BaselineCache[struct{}] = (*BaselineLocalCache[struct{}])(nil)

// BaselineLocalCache baseline 的进程内缓存
type BaselineLocalCache[S any] struct {
	c       *gcache.Cache
	key     string
	expires time.Duration
}

func (lc *BaselineLocalCache[S]) Get(_ context.Context) ([]S, error) {
	val, ok := lc.c.Get(lc.key)
	if !ok {
		return nil, errs.ErrBaselineCacheMiss
	}

	settings, ok := val.([]S)
	if !ok {
		// key 被其他类型占用，视为未命中
		lc.c.Delete(lc.key)
		return nil, errs.ErrBaselineCacheMiss
	}
	// 返回副本，调用方修改不影响缓存
	return slices.Clone(settings), nil
}

func (lc *BaselineLocalCache[S]) Set(_ context.Context, settings []S) error {
	if settings == nil {
		settings = []S{}
	}
	lc.c.Set(lc.key, slices.Clone(settings), lc.expires)
	return nil
}

func (lc *BaselineLocalCache[S]) Del(_ context.Context) error {
	lc.c.Delete(lc.key)
	return nil
}

func NewBaselineLocalCache[S any](c *gcache.Cache, key string, expires time.Duration) *BaselineLocalCache[S] {
	return &BaselineLocalCache[S]{
		c:       c,
		key:     key,
		expires: expires,
	}
}

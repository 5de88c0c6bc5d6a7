package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/JrMarcco/shipsync/internal/domain"
)

const (
	ShippingPrefix = "shipping"
	DefaultExpires = 15 * time.Minute
)

// BaselineCache 最近一次从后端加载的按国家配置（baseline）缓存。
//
// 空集合也是有效的 baseline，缓存未命中统一返回 errs.ErrBaselineCacheMiss。
type BaselineCache[S any] interface {
	Get(ctx context.Context) ([]S, error)
	Set(ctx context.Context, settings []S) error
	Del(ctx context.Context) error
}

type ShippingRateCache = BaselineCache[domain.ShippingRate]
type ShippingTimeCache = BaselineCache[domain.ShippingTime]

func BaselineKey(storeId string, kind domain.SettingKind) string {
	return fmt.Sprintf("%s:%s:%s", ShippingPrefix, storeId, kind)
}

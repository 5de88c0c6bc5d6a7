package repository

import (
	"context"
	"errors"

	"github.com/JrMarcco/easy-kit/retry"
	"github.com/JrMarcco/easy-kit/slice"
	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/JrMarcco/shipsync/internal/pkg/gla"
	"github.com/JrMarcco/shipsync/internal/repository/cache"
	"go.uber.org/zap"
)

type ShippingTimeRepo interface {
	// Find 返回 baseline，即最近一次从后端加载的运输时长
	Find(ctx context.Context) ([]domain.ShippingTime, error)
	// Load 绕过缓存从后端加载运输时长，并刷新两级缓存
	Load(ctx context.Context) ([]domain.ShippingTime, error)
	Delete(ctx context.Context, countryCodes []string) error
	// UpsertGroup 后端按 "国家列表 + 取值" 写入运输时长
	UpsertGroup(ctx context.Context, group domain.TimeGroup) error
	Invalidate(ctx context.Context) error
}

var _ ShippingTimeRepo = (*DefaultShippingTimeRepo)(nil)

type DefaultShippingTimeRepo struct {
	client     gla.Client
	localCache cache.ShippingTimeCache
	redisCache cache.ShippingTimeCache
	strategy   retry.Strategy
	logger     *zap.Logger
}

func (d *DefaultShippingTimeRepo) Find(ctx context.Context) ([]domain.ShippingTime, error) {
	times, err := d.localCache.Get(ctx)
	if err == nil {
		return times, nil
	}

	times, err = d.redisCache.Get(ctx)
	if err == nil {
		if lcErr := d.localCache.Set(ctx, times); lcErr != nil {
			d.logger.Error("[shipsync] failed to refresh shipping time local cache", zap.Error(lcErr))
		}
		return times, nil
	}

	return d.Load(ctx)
}

func (d *DefaultShippingTimeRepo) Load(ctx context.Context) ([]domain.ShippingTime, error) {
	items, err := fetchWithRetry(ctx, d.strategy, d.client.ShippingTimes)
	if err != nil {
		return nil, err
	}
	times := slice.Map(items, func(_ int, src gla.ShippingTime) domain.ShippingTime {
		return domain.ShippingTime{
			CountryCode: src.CountryCode,
			Time:        src.Time,
			MaxTime:     src.MaxTime,
		}
	})

	if lcErr := d.localCache.Set(ctx, times); lcErr != nil {
		d.logger.Error("[shipsync] failed to refresh shipping time local cache", zap.Error(lcErr))
	}
	if rcErr := d.redisCache.Set(ctx, times); rcErr != nil {
		d.logger.Error("[shipsync] failed to refresh shipping time redis cache", zap.Error(rcErr))
	}
	return times, nil
}

func (d *DefaultShippingTimeRepo) Delete(ctx context.Context, countryCodes []string) error {
	return d.client.DeleteShippingTimes(ctx, countryCodes)
}

func (d *DefaultShippingTimeRepo) UpsertGroup(ctx context.Context, group domain.TimeGroup) error {
	return d.client.UpsertShippingTimes(ctx, gla.TimeBatch{
		CountryCodes: group.CountryCodes,
		Time:         group.Time,
		MaxTime:      group.MaxTime,
	})
}

func (d *DefaultShippingTimeRepo) Invalidate(ctx context.Context) error {
	return errors.Join(d.localCache.Del(ctx), d.redisCache.Del(ctx))
}

func NewDefaultShippingTimeRepo(
	client gla.Client,
	localCache cache.ShippingTimeCache,
	redisCache cache.ShippingTimeCache,
	strategy retry.Strategy,
	logger *zap.Logger,
) *DefaultShippingTimeRepo {
	return &DefaultShippingTimeRepo{
		client:     client,
		localCache: localCache,
		redisCache: redisCache,
		strategy:   strategy,
		logger:     logger,
	}
}

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

type ShippingRateRepo interface {
	// Find 返回 baseline，即最近一次从后端加载的运费，优先读取缓存
	Find(ctx context.Context) ([]domain.ShippingRate, error)
	// Load 绕过缓存从后端加载运费，并刷新两级缓存
	Load(ctx context.Context) ([]domain.ShippingRate, error)
	Delete(ctx context.Context, countryCodes []string) error
	Upsert(ctx context.Context, rates []domain.ShippingRate) error
	// Invalidate 丢弃缓存的 baseline，下次 Find 从后端重新加载
	Invalidate(ctx context.Context) error
}

var _ ShippingRateRepo = (*DefaultShippingRateRepo)(nil)

type DefaultShippingRateRepo struct {
	client     gla.Client
	localCache cache.ShippingRateCache
	redisCache cache.ShippingRateCache
	strategy   retry.Strategy
	logger     *zap.Logger
}

func (d *DefaultShippingRateRepo) Find(ctx context.Context) ([]domain.ShippingRate, error) {
	// 从本地缓存获取
	rates, err := d.localCache.Get(ctx)
	if err == nil {
		return rates, nil
	}

	// 从 redis 获取
	rates, err = d.redisCache.Get(ctx)
	if err == nil {
		// 刷新本地缓存
		if lcErr := d.localCache.Set(ctx, rates); lcErr != nil {
			d.logger.Error("[shipsync] failed to refresh shipping rate local cache", zap.Error(lcErr))
		}
		return rates, nil
	}

	return d.Load(ctx)
}

func (d *DefaultShippingRateRepo) Load(ctx context.Context) ([]domain.ShippingRate, error) {
	items, err := fetchWithRetry(ctx, d.strategy, d.client.ShippingRates)
	if err != nil {
		return nil, err
	}
	rates := slice.Map(items, func(_ int, src gla.ShippingRate) domain.ShippingRate {
		return d.toDomain(src)
	})

	// 先刷新本地缓存（本地缓存几乎不会出错）
	if lcErr := d.localCache.Set(ctx, rates); lcErr != nil {
		d.logger.Error("[shipsync] failed to refresh shipping rate local cache", zap.Error(lcErr))
	}
	// 刷新 redis 缓存
	if rcErr := d.redisCache.Set(ctx, rates); rcErr != nil {
		d.logger.Error("[shipsync] failed to refresh shipping rate redis cache", zap.Error(rcErr))
	}
	return rates, nil
}

func (d *DefaultShippingRateRepo) Delete(ctx context.Context, countryCodes []string) error {
	return d.client.DeleteShippingRates(ctx, countryCodes)
}

func (d *DefaultShippingRateRepo) Upsert(ctx context.Context, rates []domain.ShippingRate) error {
	return d.client.UpsertShippingRates(ctx, slice.Map(rates, func(_ int, src domain.ShippingRate) gla.ShippingRate {
		return d.toEntity(src)
	}))
}

func (d *DefaultShippingRateRepo) Invalidate(ctx context.Context) error {
	return errors.Join(d.localCache.Del(ctx), d.redisCache.Del(ctx))
}

func (d *DefaultShippingRateRepo) toDomain(src gla.ShippingRate) domain.ShippingRate {
	return domain.ShippingRate{
		CountryCode: src.CountryCode,
		Currency:    src.Currency,
		Rate:        src.Rate,
	}
}

func (d *DefaultShippingRateRepo) toEntity(src domain.ShippingRate) gla.ShippingRate {
	return gla.ShippingRate{
		CountryCode: src.CountryCode,
		Currency:    src.Currency,
		Rate:        src.Rate,
	}
}

func NewDefaultShippingRateRepo(
	client gla.Client,
	localCache cache.ShippingRateCache,
	redisCache cache.ShippingRateCache,
	strategy retry.Strategy,
	logger *zap.Logger,
) *DefaultShippingRateRepo {
	return &DefaultShippingRateRepo{
		client:     client,
		localCache: localCache,
		redisCache: redisCache,
		strategy:   strategy,
		logger:     logger,
	}
}

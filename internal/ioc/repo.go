package ioc

import (
	"time"

	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/JrMarcco/shipsync/internal/pkg/gla"
	"github.com/JrMarcco/shipsync/internal/repository"
	"github.com/JrMarcco/shipsync/internal/repository/cache"
	"github.com/JrMarcco/shipsync/internal/repository/cache/local"
	rediscache "github.com/JrMarcco/shipsync/internal/repository/cache/redis"
	"github.com/JrMarcco/shipsync/internal/repository/dao"
	gcache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

var RepoFxOpt = fx.Options(
	// cache
	fx.Provide(
		InitCacheConfig,
		InitLocalCache,
		fx.Annotate(
			InitRateLocalCache,
			fx.As(new(cache.ShippingRateCache)),
			fx.ResultTags(`name:"rate_local_cache"`),
		),
		fx.Annotate(
			InitRateRedisCache,
			fx.As(new(cache.ShippingRateCache)),
			fx.ResultTags(`name:"rate_redis_cache"`),
		),
		fx.Annotate(
			InitTimeLocalCache,
			fx.As(new(cache.ShippingTimeCache)),
			fx.ResultTags(`name:"time_local_cache"`),
		),
		fx.Annotate(
			InitTimeRedisCache,
			fx.As(new(cache.ShippingTimeCache)),
			fx.ResultTags(`name:"time_redis_cache"`),
		),
	),

	// dao
	fx.Provide(
		fx.Annotate(
			dao.NewDefaultSaveLogDAO,
			fx.As(new(dao.SaveLogDAO)),
		),
	),

	// repository
	fx.Provide(
		// shipping rate repository
		fx.Annotate(
			repository.NewDefaultShippingRateRepo,
			fx.As(new(repository.ShippingRateRepo)),
			fx.ParamTags(``, `name:"rate_local_cache"`, `name:"rate_redis_cache"`),
		),
		// shipping time repository
		fx.Annotate(
			repository.NewDefaultShippingTimeRepo,
			fx.As(new(repository.ShippingTimeRepo)),
			fx.ParamTags(``, `name:"time_local_cache"`, `name:"time_redis_cache"`),
		),
		// target audience repository
		fx.Annotate(
			InitAudienceRepo,
			fx.As(new(repository.AudienceRepo)),
		),
		// save log repository
		fx.Annotate(
			repository.NewDefaultSaveLogRepo,
			fx.As(new(repository.SaveLogRepo)),
		),
	),
)

type CacheConfig struct {
	StoreId      string
	LocalExpires time.Duration
	RedisExpires time.Duration
}

func InitCacheConfig() CacheConfig {
	type config struct {
		LocalExpires int `mapstructure:"local_expires"`
		RedisExpires int `mapstructure:"redis_expires"`
	}

	cfg := &config{}
	if err := viper.UnmarshalKey("cache", cfg); err != nil {
		panic(err)
	}

	res := CacheConfig{
		StoreId:      viper.GetString("store.id"),
		LocalExpires: time.Duration(cfg.LocalExpires) * time.Second,
		RedisExpires: time.Duration(cfg.RedisExpires) * time.Second,
	}
	if res.LocalExpires <= 0 {
		res.LocalExpires = cache.DefaultExpires
	}
	if res.RedisExpires <= 0 {
		res.RedisExpires = cache.DefaultExpires
	}
	return res
}

func InitLocalCache(cfg CacheConfig) *gcache.Cache {
	return gcache.New(cfg.LocalExpires, 2*cfg.LocalExpires)
}

func InitRateLocalCache(c *gcache.Cache, cfg CacheConfig) *local.BaselineLocalCache[domain.ShippingRate] {
	return local.NewBaselineLocalCache[domain.ShippingRate](
		c, cache.BaselineKey(cfg.StoreId, domain.SettingKindRate), cfg.LocalExpires,
	)
}

func InitRateRedisCache(rc redis.Cmdable, cfg CacheConfig) *rediscache.BaselineRedisCache[domain.ShippingRate] {
	return rediscache.NewBaselineRedisCache[domain.ShippingRate](
		rc, cache.BaselineKey(cfg.StoreId, domain.SettingKindRate), cfg.RedisExpires,
	)
}

func InitTimeLocalCache(c *gcache.Cache, cfg CacheConfig) *local.BaselineLocalCache[domain.ShippingTime] {
	return local.NewBaselineLocalCache[domain.ShippingTime](
		c, cache.BaselineKey(cfg.StoreId, domain.SettingKindTime), cfg.LocalExpires,
	)
}

func InitTimeRedisCache(rc redis.Cmdable, cfg CacheConfig) *rediscache.BaselineRedisCache[domain.ShippingTime] {
	return rediscache.NewBaselineRedisCache[domain.ShippingTime](
		rc, cache.BaselineKey(cfg.StoreId, domain.SettingKindTime), cfg.RedisExpires,
	)
}

func InitAudienceRepo(client gla.Client, c *gcache.Cache, cfg CacheConfig) *repository.DefaultAudienceRepo {
	return repository.NewDefaultAudienceRepo(
		client, c, cache.BaselineKey(cfg.StoreId, "audience"), cfg.LocalExpires,
	)
}

package ioc

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

var RedisFxOpt = fx.Provide(
	InitRedis,
)

// InitRedis baseline 二级缓存使用的 redis 客户端，进程退出时关闭
func InitRedis(lc fx.Lifecycle) redis.Cmdable {
	type config struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	}
	cfg := &config{}
	if err := viper.UnmarshalKey("redis", cfg); err != nil {
		panic(err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

package ioc

import (
	"time"

	easyretry "github.com/JrMarcco/easy-kit/retry"
	"github.com/JrMarcco/shipsync/internal/pkg/gla"
	"github.com/JrMarcco/shipsync/internal/pkg/retry"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

var GlaFxOpt = fx.Provide(
	fx.Annotate(
		InitGlaClient,
		fx.As(new(gla.Client)),
	),
	InitReadRetryStrategy,
)

func InitGlaClient() *gla.RestClient {
	type config struct {
		StoreURL       string `mapstructure:"store_url"`
		ConsumerKey    string `mapstructure:"consumer_key"`
		ConsumerSecret string `mapstructure:"consumer_secret"`
		Timeout        int    `mapstructure:"timeout"`
	}

	cfg := &config{}
	if err := viper.UnmarshalKey("gla", cfg); err != nil {
		panic(err)
	}

	return gla.NewRestClient(
		cfg.StoreURL, cfg.ConsumerKey, cfg.ConsumerSecret, time.Duration(cfg.Timeout)*time.Millisecond,
	)
}

// InitReadRetryStrategy baseline 读取的重试策略，未配置时不重试。
//
// 写操作不重试。
func InitReadRetryStrategy() easyretry.Strategy {
	if !viper.IsSet("gla.retry") {
		return nil
	}

	cfg := retry.Config{}
	if err := viper.UnmarshalKey("gla.retry", &cfg); err != nil {
		panic(err)
	}

	strategy, err := retry.NewRetryStrategy(cfg)
	if err != nil {
		panic(err)
	}
	return strategy
}

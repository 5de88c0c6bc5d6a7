package ioc

import (
	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/JrMarcco/shipsync/internal/pkg/metrics"
	"github.com/JrMarcco/shipsync/internal/repository"
	"github.com/JrMarcco/shipsync/internal/service/shipping"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var ServiceFxOpt = fx.Options(
	fx.Provide(
		// metrics
		InitMetricsRegistry,
		InitShippingMetrics,

		// savers
		fx.Annotate(
			shipping.NewRateSaver,
			fx.As(new(shipping.Saver[domain.ShippingRate])),
		),
		fx.Annotate(
			shipping.NewTimeSaver,
			fx.As(new(shipping.Saver[domain.ShippingTime])),
		),

		// shipping rate service
		fx.Annotate(
			InitRateService,
			fx.As(new(shipping.RateService)),
		),
		// shipping time service
		fx.Annotate(
			shipping.NewDefaultTimeService,
			fx.As(new(shipping.TimeService)),
		),
		// save log service
		fx.Annotate(
			shipping.NewDefaultSaveLogService,
			fx.As(new(shipping.SaveLogService)),
		),
	),
)

func InitMetricsRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func InitShippingMetrics(registry *prometheus.Registry) *metrics.ShippingMetrics {
	return metrics.NewShippingMetrics(registry)
}

func InitRateService(
	repo repository.ShippingRateRepo,
	audienceRepo repository.AudienceRepo,
	saver shipping.Saver[domain.ShippingRate],
	logRepo repository.SaveLogRepo,
	m *metrics.ShippingMetrics,
	logger *zap.Logger,
) *shipping.DefaultRateService {
	type config struct {
		Currency string `mapstructure:"currency"`
	}

	cfg := &config{}
	if err := viper.UnmarshalKey("store", cfg); err != nil {
		panic(err)
	}

	return shipping.NewDefaultRateService(cfg.Currency, repo, audienceRepo, saver, logRepo, m, logger)
}

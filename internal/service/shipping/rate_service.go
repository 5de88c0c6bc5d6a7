package shipping

import (
	"context"
	"fmt"
	"time"

	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/JrMarcco/shipsync/internal/errs"
	"github.com/JrMarcco/shipsync/internal/pkg/fingerprint"
	"github.com/JrMarcco/shipsync/internal/pkg/metrics"
	"github.com/JrMarcco/shipsync/internal/repository"
	"go.uber.org/zap"
)

type RateService interface {
	View(ctx context.Context) (domain.RateView, error)
	// Save 把运费同步为 rates。
	//
	// version 非空时必须与当前 baseline 的版本一致，否则返回 errs.ErrStaleBaseline。
	Save(ctx context.Context, rates []domain.ShippingRate, version string) (domain.RateView, error)
}

var _ RateService = (*DefaultRateService)(nil)

type DefaultRateService struct {
	currency string

	repo         repository.ShippingRateRepo
	audienceRepo repository.AudienceRepo
	saver        Saver[domain.ShippingRate]
	recorder     *recorder

	logger *zap.Logger
}

func (s *DefaultRateService) View(ctx context.Context) (domain.RateView, error) {
	rates, err := s.repo.Find(ctx)
	if err != nil {
		return domain.RateView{}, err
	}
	audience, err := s.audienceRepo.Countries(ctx)
	if err != nil {
		return domain.RateView{}, err
	}

	groups := AggregateRates(rates)
	if len(groups) == 0 && len(audience) > 0 {
		// 尚未配置任何运费时，用一个未填写的分组覆盖全部目标国家
		groups = append(groups, domain.AggregatedRate{
			Countries: audience,
			Currency:  s.currency,
		})
	}

	return domain.RateView{
		Version:            fingerprint.Rates(rates),
		Rates:              rates,
		Groups:             groups,
		RemainingCountries: RemainingCountries[domain.ShippingRate, domain.RateValue](audience, rates),
	}, nil
}

func (s *DefaultRateService) Save(ctx context.Context, rates []domain.ShippingRate, version string) (domain.RateView, error) {
	if c, ok := DuplicateCountry[domain.ShippingRate, domain.RateValue](rates); ok {
		return domain.RateView{}, fmt.Errorf("%w: %s", errs.ErrDuplicateCountry, c)
	}

	start := time.Now()
	// 缓存只服务 View，多实例下本地缓存可能落后，必须以后端为准
	baseline, err := s.repo.Load(ctx)
	if err != nil {
		return domain.RateView{}, err
	}
	if version != "" && version != fingerprint.Rates(baseline) {
		s.recorder.stale(domain.SettingKindRate, time.Since(start))
		return domain.RateView{}, errs.ErrStaleBaseline
	}

	cs, err := s.saver.Save(ctx, rates, baseline)
	if err != nil || !cs.IsEmpty() {
		// 无论成功与否后端数据都可能已经变化，下次读取时重新加载
		if invErr := s.repo.Invalidate(context.WithoutCancel(ctx)); invErr != nil {
			s.logger.Error("[shipsync] failed to invalidate shipping rate baseline", zap.Error(invErr))
		}
	}
	recordSave(ctx, s.recorder, domain.SettingKindRate, cs, err, time.Since(start))
	if err != nil {
		return domain.RateView{}, err
	}

	s.logger.Info(
		"[shipsync] shipping rates saved",
		zap.Int("deleted", len(cs.DeletedCountryCodes)),
		zap.Int("upserted", len(cs.Upserted)),
	)
	return s.View(ctx)
}

func NewDefaultRateService(
	currency string,
	repo repository.ShippingRateRepo,
	audienceRepo repository.AudienceRepo,
	saver Saver[domain.ShippingRate],
	logRepo repository.SaveLogRepo,
	m *metrics.ShippingMetrics,
	logger *zap.Logger,
) *DefaultRateService {
	return &DefaultRateService{
		currency:     currency,
		repo:         repo,
		audienceRepo: audienceRepo,
		saver:        saver,
		recorder: &recorder{
			logRepo: logRepo,
			metrics: m,
			logger:  logger,
		},
		logger: logger,
	}
}

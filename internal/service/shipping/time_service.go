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

type TimeService interface {
	View(ctx context.Context) (domain.TimeView, error)
	// Save 把运输时长同步为 times，version 语义同 RateService.Save
	Save(ctx context.Context, times []domain.ShippingTime, version string) (domain.TimeView, error)
}

var _ TimeService = (*DefaultTimeService)(nil)

type DefaultTimeService struct {
	repo         repository.ShippingTimeRepo
	audienceRepo repository.AudienceRepo
	saver        Saver[domain.ShippingTime]
	recorder     *recorder

	logger *zap.Logger
}

func (s *DefaultTimeService) View(ctx context.Context) (domain.TimeView, error) {
	times, err := s.repo.Find(ctx)
	if err != nil {
		return domain.TimeView{}, err
	}
	audience, err := s.audienceRepo.Countries(ctx)
	if err != nil {
		return domain.TimeView{}, err
	}

	groups := AggregateTimes(times)
	if len(groups) == 0 && len(audience) > 0 {
		groups = append(groups, domain.AggregatedTime{Countries: audience})
	}

	return domain.TimeView{
		Version:            fingerprint.Times(times),
		Times:              times,
		Groups:             groups,
		RemainingCountries: RemainingCountries[domain.ShippingTime, domain.TimeValue](audience, times),
	}, nil
}

func (s *DefaultTimeService) Save(ctx context.Context, times []domain.ShippingTime, version string) (domain.TimeView, error) {
	if c, ok := DuplicateCountry[domain.ShippingTime, domain.TimeValue](times); ok {
		return domain.TimeView{}, fmt.Errorf("%w: %s", errs.ErrDuplicateCountry, c)
	}

	start := time.Now()
	// 缓存只服务 View，多实例下本地缓存可能落后，必须以后端为准
	baseline, err := s.repo.Load(ctx)
	if err != nil {
		return domain.TimeView{}, err
	}
	if version != "" && version != fingerprint.Times(baseline) {
		s.recorder.stale(domain.SettingKindTime, time.Since(start))
		return domain.TimeView{}, errs.ErrStaleBaseline
	}

	cs, err := s.saver.Save(ctx, times, baseline)
	if err != nil || !cs.IsEmpty() {
		if invErr := s.repo.Invalidate(context.WithoutCancel(ctx)); invErr != nil {
			s.logger.Error("[shipsync] failed to invalidate shipping time baseline", zap.Error(invErr))
		}
	}
	recordSave(ctx, s.recorder, domain.SettingKindTime, cs, err, time.Since(start))
	if err != nil {
		return domain.TimeView{}, err
	}

	s.logger.Info(
		"[shipsync] shipping times saved",
		zap.Int("deleted", len(cs.DeletedCountryCodes)),
		zap.Int("upserted", len(cs.Upserted)),
	)
	return s.View(ctx)
}

func NewDefaultTimeService(
	repo repository.ShippingTimeRepo,
	audienceRepo repository.AudienceRepo,
	saver Saver[domain.ShippingTime],
	logRepo repository.SaveLogRepo,
	m *metrics.ShippingMetrics,
	logger *zap.Logger,
) *DefaultTimeService {
	return &DefaultTimeService{
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

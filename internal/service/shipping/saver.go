package shipping

import (
	"context"
	"fmt"

	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/JrMarcco/shipsync/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Saver 把编辑后的按国家配置同步到后端。
//
// 先删除再写入，删除失败则不再写入。
// 失败时直接返回错误，不重试也不回滚已完成的部分，
// 返回的 ChangeSet 为本次计算出的变更（失败时可能只完成了其中一部分）。
type Saver[S any] interface {
	Save(ctx context.Context, settings, baseline []S) (domain.ChangeSet[S], error)
}

var _ Saver[domain.ShippingRate] = (*RateSaver)(nil)

// RateSaver 运费同步，后端接受按国家的批量写入，一次调用完成
type RateSaver struct {
	repo   repository.ShippingRateRepo
	logger *zap.Logger
}

func (s *RateSaver) Save(ctx context.Context, rates, baseline []domain.ShippingRate) (domain.ChangeSet[domain.ShippingRate], error) {
	var cs domain.ChangeSet[domain.ShippingRate]

	// 删除前算出完整变更，删除失败时日志和 ChangeSet 也能带上待写入的部分
	cs.DeletedCountryCodes = RateDeletions(rates, baseline)
	cs.Upserted = RateUpserts(rates, baseline)
	if len(cs.DeletedCountryCodes) > 0 {
		if err := s.repo.Delete(ctx, cs.DeletedCountryCodes); err != nil {
			s.logger.Error(
				"[shipsync] failed to delete shipping rates",
				zap.Strings("country_codes", cs.DeletedCountryCodes),
				zap.Int("pending_upserts", len(cs.Upserted)),
				zap.Error(err),
			)
			return cs, fmt.Errorf("[shipsync] failed to delete shipping rates: %w", err)
		}
	}

	if len(cs.Upserted) > 0 {
		if err := s.repo.Upsert(ctx, cs.Upserted); err != nil {
			s.logger.Error(
				"[shipsync] failed to upsert shipping rates",
				zap.Int("count", len(cs.Upserted)),
				zap.Error(err),
			)
			return cs, fmt.Errorf("[shipsync] failed to upsert shipping rates: %w", err)
		}
	}
	return cs, nil
}

func NewRateSaver(repo repository.ShippingRateRepo, logger *zap.Logger) *RateSaver {
	return &RateSaver{
		repo:   repo,
		logger: logger,
	}
}

var _ Saver[domain.ShippingTime] = (*TimeSaver)(nil)

// TimeSaver 运输时长同步。
//
// 后端按 "国家列表 + 取值" 写入，变更需要先重新聚合，每个分组一次调用，并发执行。
// 任一分组失败则整体失败，已成功的分组不回滚。
type TimeSaver struct {
	repo   repository.ShippingTimeRepo
	logger *zap.Logger
}

func (s *TimeSaver) Save(ctx context.Context, times, baseline []domain.ShippingTime) (domain.ChangeSet[domain.ShippingTime], error) {
	var cs domain.ChangeSet[domain.ShippingTime]

	// 删除前算出完整变更，删除失败时日志和 ChangeSet 也能带上待写入的部分
	cs.DeletedCountryCodes = TimeDeletions(times, baseline)
	cs.Upserted = TimeUpserts(times, baseline)
	if len(cs.DeletedCountryCodes) > 0 {
		if err := s.repo.Delete(ctx, cs.DeletedCountryCodes); err != nil {
			s.logger.Error(
				"[shipsync] failed to delete shipping times",
				zap.Strings("country_codes", cs.DeletedCountryCodes),
				zap.Int("pending_upserts", len(cs.Upserted)),
				zap.Error(err),
			)
			return cs, fmt.Errorf("[shipsync] failed to delete shipping times: %w", err)
		}
	}

	if len(cs.Upserted) == 0 {
		return cs, nil
	}

	// 不使用 errgroup.WithContext，单个分组失败不取消其他分组的请求
	var eg errgroup.Group
	for _, group := range GroupTimes(cs.Upserted) {
		eg.Go(func() error {
			err := s.repo.UpsertGroup(ctx, group)
			if err != nil {
				s.logger.Error(
					"[shipsync] failed to upsert shipping time group",
					zap.Strings("country_codes", group.CountryCodes),
					zap.Int32("time", group.Time),
					zap.Int32("max_time", group.MaxTime),
					zap.Error(err),
				)
			}
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return cs, fmt.Errorf("[shipsync] failed to upsert shipping times: %w", err)
	}
	return cs, nil
}

func NewTimeSaver(repo repository.ShippingTimeRepo, logger *zap.Logger) *TimeSaver {
	return &TimeSaver{
		repo:   repo,
		logger: logger,
	}
}

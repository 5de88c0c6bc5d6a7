package shipping

import (
	"context"
	"encoding/json"
	"time"

	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/JrMarcco/shipsync/internal/pkg/metrics"
	"github.com/JrMarcco/shipsync/internal/pkg/operator"
	"github.com/JrMarcco/shipsync/internal/repository"
	"go.uber.org/zap"
)

// recorder 记录保存结果：保存日志 + 指标
type recorder struct {
	logRepo repository.SaveLogRepo
	metrics *metrics.ShippingMetrics
	logger  *zap.Logger
}

func (r *recorder) stale(kind domain.SettingKind, elapsed time.Duration) {
	r.metrics.ObserveSave(kind, metrics.ResultStale, elapsed)
}

func recordSave[S any](
	ctx context.Context, r *recorder, kind domain.SettingKind, cs domain.ChangeSet[S], saveErr error, elapsed time.Duration,
) {
	if saveErr == nil && cs.IsEmpty() {
		r.metrics.ObserveSave(kind, metrics.ResultNoop, elapsed)
		return
	}

	log := domain.SaveLog{
		Kind:                kind,
		DeletedCountryCodes: cs.DeletedCountryCodes,
		Status:              domain.SaveStatusSuccess,
	}
	if op, err := operator.Extract(ctx); err == nil {
		log.Operator = op
	}
	if upserted, err := json.Marshal(cs.Upserted); err == nil {
		log.Upserted = string(upserted)
	}

	result := metrics.ResultSuccess
	if saveErr != nil {
		result = metrics.ResultFailure
		log.Status = domain.SaveStatusFailure
		log.Error = saveErr.Error()
	} else {
		r.metrics.AddChanges(kind, len(cs.DeletedCountryCodes), len(cs.Upserted))
	}
	r.metrics.ObserveSave(kind, result, elapsed)

	// 保存日志失败不影响保存结果
	if _, err := r.logRepo.Create(context.WithoutCancel(ctx), log); err != nil {
		r.logger.Error(
			"[shipsync] failed to create shipping save log",
			zap.String("kind", kind.String()),
			zap.String("status", log.Status.String()),
			zap.Error(err),
		)
	}
}

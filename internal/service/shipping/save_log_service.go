package shipping

import (
	"context"

	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/JrMarcco/shipsync/internal/errs"
	"github.com/JrMarcco/shipsync/internal/repository"
)

const (
	defaultSaveLogLimit = 20
	maxSaveLogLimit     = 200
)

type SaveLogService interface {
	// Find 返回最近的保存记录，kind 为空时返回全部类型
	Find(ctx context.Context, kind domain.SettingKind, limit int) ([]domain.SaveLog, error)
}

var _ SaveLogService = (*DefaultSaveLogService)(nil)

type DefaultSaveLogService struct {
	repo repository.SaveLogRepo
}

func (s *DefaultSaveLogService) Find(ctx context.Context, kind domain.SettingKind, limit int) ([]domain.SaveLog, error) {
	if kind != "" && !kind.IsValid() {
		return nil, errs.ErrUnknownSettingKind
	}

	switch {
	case limit <= 0:
		limit = defaultSaveLogLimit
	case limit > maxSaveLogLimit:
		limit = maxSaveLogLimit
	}
	return s.repo.Find(ctx, kind, limit)
}

func NewDefaultSaveLogService(repo repository.SaveLogRepo) *DefaultSaveLogService {
	return &DefaultSaveLogService{
		repo: repo,
	}
}

package repository

import (
	"context"
	"encoding/json"

	"github.com/JrMarcco/easy-kit/slice"
	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/JrMarcco/shipsync/internal/repository/dao"
)

type SaveLogRepo interface {
	Create(ctx context.Context, log domain.SaveLog) (domain.SaveLog, error)
	Find(ctx context.Context, kind domain.SettingKind, limit int) ([]domain.SaveLog, error)
}

var _ SaveLogRepo = (*DefaultSaveLogRepo)(nil)

type DefaultSaveLogRepo struct {
	dao dao.SaveLogDAO
}

func (d *DefaultSaveLogRepo) Create(ctx context.Context, log domain.SaveLog) (domain.SaveLog, error) {
	entity, err := d.dao.Insert(ctx, d.toEntity(log))
	if err != nil {
		return domain.SaveLog{}, err
	}
	return d.toDomain(entity), nil
}

func (d *DefaultSaveLogRepo) Find(ctx context.Context, kind domain.SettingKind, limit int) ([]domain.SaveLog, error) {
	entities, err := d.dao.Find(ctx, kind.String(), limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.ShippingSaveLog) domain.SaveLog {
		return d.toDomain(src)
	}), nil
}

func (d *DefaultSaveLogRepo) toDomain(entity dao.ShippingSaveLog) domain.SaveLog {
	var deleted []string
	_ = json.Unmarshal([]byte(entity.Deleted), &deleted)

	return domain.SaveLog{
		Id:                  entity.Id,
		Kind:                domain.SettingKind(entity.Kind),
		Operator:            entity.Operator,
		DeletedCountryCodes: deleted,
		Upserted:            entity.Upserted,
		Status:              domain.SaveStatus(entity.Status),
		Error:               entity.ErrMsg,
		CreateAt:            entity.CreatedAt,
	}
}

func (d *DefaultSaveLogRepo) toEntity(log domain.SaveLog) dao.ShippingSaveLog {
	deleted, _ := json.Marshal(log.DeletedCountryCodes)
	return dao.ShippingSaveLog{
		Kind:     log.Kind.String(),
		Operator: log.Operator,
		Deleted:  string(deleted),
		Upserted: log.Upserted,
		Status:   log.Status.String(),
		ErrMsg:   log.Error,
	}
}

func NewDefaultSaveLogRepo(dao dao.SaveLogDAO) *DefaultSaveLogRepo {
	return &DefaultSaveLogRepo{
		dao: dao,
	}
}

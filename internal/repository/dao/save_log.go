package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ShippingSaveLog 运费配置保存记录
type ShippingSaveLog struct {
	Id        uint64 `gorm:"primaryKey;autoIncrement"`
	Kind      string `gorm:"type:varchar(16);not null;index:idx_kind_id,priority:1"`
	Operator  string `gorm:"type:varchar(128);not null;default:''"`
	Deleted   string `gorm:"type:text"` // json 数组，被删除的国家代码
	Upserted  string `gorm:"type:text"` // json 数组，写入的按国家配置
	Status    string `gorm:"type:varchar(16);not null"`
	ErrMsg    string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`
}

func (l ShippingSaveLog) TableName() string {
	return "shipping_save_log"
}

type SaveLogDAO interface {
	Insert(ctx context.Context, log ShippingSaveLog) (ShippingSaveLog, error)
	// Find 按 id 倒序返回最近的记录，kind 为空时不过滤
	Find(ctx context.Context, kind string, limit int) ([]ShippingSaveLog, error)
}

var _ SaveLogDAO = (*DefaultSaveLogDAO)(nil)

type DefaultSaveLogDAO struct {
	db *gorm.DB
}

func (d *DefaultSaveLogDAO) Insert(ctx context.Context, log ShippingSaveLog) (ShippingSaveLog, error) {
	now := time.Now().UnixMilli()
	log.CreatedAt = now
	log.UpdatedAt = now

	if err := d.db.WithContext(ctx).Create(&log).Error; err != nil {
		return ShippingSaveLog{}, err
	}
	return log, nil
}

func (d *DefaultSaveLogDAO) Find(ctx context.Context, kind string, limit int) ([]ShippingSaveLog, error) {
	var logs []ShippingSaveLog

	query := d.db.WithContext(ctx).Model(&ShippingSaveLog{})
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	err := query.Order("id DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func NewDefaultSaveLogDAO(db *gorm.DB) *DefaultSaveLogDAO {
	return &DefaultSaveLogDAO{
		db: db,
	}
}

package dao

import (
	"context"
	"errors"
	"time"

	"Donghwa/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyUsageDAO struct {
	Repo[models.DailyUsage]
}

func NewDailyUsageDAO(db *gorm.DB) *DailyUsageDAO {
	return &DailyUsageDAO{Repo: NewRepo[models.DailyUsage](db)}
}

func (d *DailyUsageDAO) GetByDate(ctx context.Context, date string) (*models.DailyUsage, error) {
	var item models.DailyUsage
	err := d.Db.WithContext(ctx).Where("date = ?", date).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// CreateIfAbsent 首次读取当天额度时懒创建 count=0 的行
func (d *DailyUsageDAO) CreateIfAbsent(ctx context.Context, date string, limit int) error {
	row := models.DailyUsage{Date: date, Count: 0, MaxLimit: limit}
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoNothing: true,
	}).Create(&row).Error
}

// IncrementCount 单条 UPSERT 完成当天计数 +1。
// 整条自增落在一个语句里，并发调用不会互相覆盖（MySQL 走
// ON DUPLICATE KEY，sqlite 走 ON CONFLICT，由 gorm 按方言生成）。
func (d *DailyUsageDAO) IncrementCount(ctx context.Context, date string, limit int) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := models.DailyUsage{Date: date, Count: 1, MaxLimit: limit}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count":      gorm.Expr("count + 1"),
				"updated_at": time.Now(),
			}),
		}).Create(&row).Error
	})
}

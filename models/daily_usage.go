package models

import "time"

// DailyUsage 每日生成次数账本
// 对应表 daily_usage
// 每个日期最多一行，count 当日内只增不减，从不删除
type DailyUsage struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	Date      string    `gorm:"column:date;type:varchar(10);not null;uniqueIndex:uk_date" json:"date"`
	Count     int       `gorm:"column:count;not null;default:0" json:"count"`
	MaxLimit  int       `gorm:"column:max_limit;not null" json:"maxLimit"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (d DailyUsage) TableName() string { return "daily_usage" }

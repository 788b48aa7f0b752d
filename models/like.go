package models

import "time"

// Like 点赞记录
// 对应表 likes
// 唯一键: fairy_tale_id + user_ip，存在即点赞，再次点击删除
type Like struct {
	ID          uint64    `gorm:"column:id;primary_key" json:"id"`
	FairyTaleID uint64    `gorm:"column:fairy_tale_id;not null;index:uk_tale_ip,unique,priority:1" json:"fairyTaleId"`
	UserIp      string    `gorm:"column:user_ip;type:varchar(45);not null;index:uk_tale_ip,unique,priority:2" json:"userIp"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (l Like) TableName() string { return "likes" }

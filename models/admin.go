package models

import "time"

// Admin 管理端账号，密码 bcrypt 存储
type Admin struct {
	ID           uint64    `gorm:"column:id;primary_key" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(50);not null;uniqueIndex:uk_username" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(100);not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (a Admin) TableName() string { return "admins" }

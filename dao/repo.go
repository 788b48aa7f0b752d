package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 泛型基础仓储，各表 DAO 内嵌使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

func (r Repo[T]) IsExist(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(query, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r Repo[T]) Count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(query, args...).Count(&count).Error
	return count, err
}

func (r Repo[T]) Delete(ctx context.Context, query string, args ...interface{}) error {
	var model T
	return r.Db.WithContext(ctx).Where(query, args...).Delete(&model).Error
}

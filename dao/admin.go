package dao

import (
	"context"
	"errors"

	"Donghwa/models"

	"gorm.io/gorm"
)

type AdminDAO struct {
	Repo[models.Admin]
}

func NewAdminDAO(db *gorm.DB) *AdminDAO {
	return &AdminDAO{Repo: NewRepo[models.Admin](db)}
}

func (d *AdminDAO) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var item models.Admin
	err := d.Db.WithContext(ctx).Where("username = ?", username).Limit(1).Find(&item).Error
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

package dao

import (
	"context"
	"errors"

	"Donghwa/models"

	"gorm.io/gorm"
)

type FairyTaleDAO struct {
	Repo[models.FairyTale]
}

func NewFairyTaleDAO(db *gorm.DB) *FairyTaleDAO {
	return &FairyTaleDAO{Repo: NewRepo[models.FairyTale](db)}
}

func (d *FairyTaleDAO) GetByID(ctx context.Context, id uint64) (*models.FairyTale, error) {
	var item models.FairyTale
	err := d.Db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&item).Error
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

// FindGallery 公开且已审核的童话，新→旧
func (d *FairyTaleDAO) FindGallery(ctx context.Context, limit int) ([]*models.FairyTale, error) {
	var items []*models.FairyTale
	err := d.Db.WithContext(ctx).
		Where("is_public = ? AND is_approved = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// FindAll 管理端全量列表，不过滤可见性
func (d *FairyTaleDAO) FindAll(ctx context.Context) ([]*models.FairyTale, error) {
	var items []*models.FairyTale
	err := d.Db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (d *FairyTaleDAO) UpdateApproval(ctx context.Context, id uint64, approved bool) error {
	return d.Db.WithContext(ctx).
		Model(&models.FairyTale{}).
		Where("id = ?", id).
		Update("is_approved", approved).Error
}

func (d *FairyTaleDAO) UpdatePublic(ctx context.Context, id uint64, public bool) error {
	return d.Db.WithContext(ctx).
		Model(&models.FairyTale{}).
		Where("id = ?", id).
		Update("is_public", public).Error
}

func (d *FairyTaleDAO) UpdateIllustrations(ctx context.Context, id uint64, illustrations []byte) error {
	return d.Db.WithContext(ctx).
		Model(&models.FairyTale{}).
		Where("id = ?", id).
		Update("illustrations", illustrations).Error
}

func (d *FairyTaleDAO) UpdatePdfUrl(ctx context.Context, id uint64, pdfUrl string) error {
	return d.Db.WithContext(ctx).
		Model(&models.FairyTale{}).
		Where("id = ?", id).
		Update("pdf_url", pdfUrl).Error
}

// DeleteCascade 删除童话及其全部点赞
func (d *FairyTaleDAO) DeleteCascade(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("fairy_tale_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.FairyTale{}).Error
	})
}

package dao

import (
	"context"
	"errors"

	"Donghwa/models"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// GetByTaleIp 查询指定客户端对指定童话的点赞记录
func (d *LikeDAO) GetByTaleIp(ctx context.Context, taleID uint64, userIp string) (*models.Like, error) {
	var item models.Like
	err := d.Db.WithContext(ctx).Where("fairy_tale_id = ? AND user_ip = ?", taleID, userIp).Limit(1).Find(&item).Error
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

func (d *LikeDAO) DeleteByID(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.Like{}).Error
}

// CountByTale 点赞总数，变更后全量重数
func (d *LikeDAO) CountByTale(ctx context.Context, taleID uint64) (int64, error) {
	return d.Count(ctx, "fairy_tale_id = ?", taleID)
}

// IsLiked 该客户端是否已点赞
func (d *LikeDAO) IsLiked(ctx context.Context, taleID uint64, userIp string) (bool, error) {
	return d.IsExist(ctx, "fairy_tale_id = ? AND user_ip = ?", taleID, userIp)
}

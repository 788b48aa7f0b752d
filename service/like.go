package service

import (
	"context"
	"net/http"

	"Donghwa/dao"
	"Donghwa/models"
	"Donghwa/pkg/response"
	"Donghwa/pkg/snowflake"
	"Donghwa/types"

	"golang.org/x/sync/errgroup"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Toggle(ctx context.Context, taleID uint64, userIp string) (*types.LikeResponse, error)
	Status(ctx context.Context, taleID uint64, userIp string) (*types.LikeResponse, error)
}

type LikeService struct {
	LikeDAO      *dao.LikeDAO
	FairyTaleDAO *dao.FairyTaleDAO
}

// Toggle 幂等开关：有记录删，无记录建，返回变更后的全量计数。
// 查改之间不加事务，连点竞态最多多翻一次，用户可自行纠正。
func (s *LikeService) Toggle(ctx context.Context, taleID uint64, userIp string) (*types.LikeResponse, error) {
	exist, err := s.FairyTaleDAO.IsExist(ctx, "id = ?", taleID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NewError(http.StatusNotFound, "동화를 찾을 수 없습니다")
	}

	existing, err := s.LikeDAO.GetByTaleIp(ctx, taleID, userIp)
	if err != nil {
		return nil, err
	}

	isLiked := false
	if existing != nil {
		if err := s.LikeDAO.DeleteByID(ctx, existing.ID); err != nil {
			return nil, err
		}
	} else {
		like := &models.Like{
			ID:          uint64(snowflake.GenID()),
			FairyTaleID: taleID,
			UserIp:      userIp,
		}
		if err := s.LikeDAO.Create(ctx, like); err != nil {
			return nil, err
		}
		isLiked = true
	}

	count, err := s.LikeDAO.CountByTale(ctx, taleID)
	if err != nil {
		return nil, err
	}
	return &types.LikeResponse{IsLiked: isLiked, LikeCount: count}, nil
}

// Status 只读查询，计数和是否点赞两个查询互相独立，并发执行
func (s *LikeService) Status(ctx context.Context, taleID uint64, userIp string) (*types.LikeResponse, error) {
	var (
		count int64
		liked bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		count, err = s.LikeDAO.CountByTale(gctx, taleID)
		return err
	})
	g.Go(func() error {
		var err error
		liked, err = s.LikeDAO.IsLiked(gctx, taleID, userIp)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.LikeResponse{IsLiked: liked, LikeCount: count}, nil
}

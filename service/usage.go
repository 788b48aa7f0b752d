package service

import (
	"context"
	"time"

	"Donghwa/config"
	"Donghwa/dao"
	"Donghwa/types"
)

var _ IUsageService = (*UsageService)(nil)

type IUsageService interface {
	GetStatus(ctx context.Context) (*types.UsageStatus, error)
	Increment(ctx context.Context) error
}

// UsageService 每日额度账本。日期按配置时区切天，
// 额度值每次操作现读环境变量，支持线上直接调整。
type UsageService struct {
	UsageDAO *dao.DailyUsageDAO
	Config   *config.Config
}

func (s *UsageService) today() string {
	return time.Now().In(s.Config.Usage.Location()).Format("2006-01-02")
}

func (s *UsageService) GetStatus(ctx context.Context) (*types.UsageStatus, error) {
	date := s.today()
	limit := s.Config.Usage.DailyLimit()

	row, err := s.UsageDAO.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	current := 0
	if row == nil {
		// 当天首次访问，懒创建 count=0 的行
		if err := s.UsageDAO.CreateIfAbsent(ctx, date, limit); err != nil {
			return nil, err
		}
	} else {
		current = row.Count
	}

	remaining := limit - current
	if remaining < 0 {
		remaining = 0
	}

	return &types.UsageStatus{
		Current:    current,
		Limit:      limit,
		Remaining:  remaining,
		IsExceeded: current >= limit,
		Date:       date,
	}, nil
}

func (s *UsageService) Increment(ctx context.Context) error {
	return s.UsageDAO.IncrementCount(ctx, s.today(), s.Config.Usage.DailyLimit())
}

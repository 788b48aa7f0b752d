package service

import (
	"context"
	"sync"
	"testing"

	"Donghwa/config"
	"Donghwa/dao"
)

func newUsageService(t *testing.T) *UsageService {
	t.Helper()
	db := newTestDB(t)
	return &UsageService{
		UsageDAO: dao.NewDailyUsageDAO(db),
		Config:   &config.Config{Usage: &config.Usage{Timezone: "Asia/Seoul"}},
	}
}

func TestGetStatus_FreshDay(t *testing.T) {
	t.Setenv("DAILY_USAGE_LIMIT", "50")
	s := newUsageService(t)
	ctx := context.Background()

	status, err := s.GetStatus(ctx)
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if status.Current != 0 {
		t.Errorf("fresh day current = %d, want 0", status.Current)
	}
	if status.IsExceeded {
		t.Error("fresh day should not be exceeded")
	}
	if status.Remaining != 50 {
		t.Errorf("remaining = %d, want 50", status.Remaining)
	}
	if status.Date == "" {
		t.Error("date should be set")
	}

	// 懒创建不影响读数
	again, err := s.GetStatus(ctx)
	if err != nil {
		t.Fatalf("get status again: %v", err)
	}
	if again.Current != 0 {
		t.Errorf("current after lazy create = %d, want 0", again.Current)
	}
}

func TestIncrement_Concurrent(t *testing.T) {
	t.Setenv("DAILY_USAGE_LIMIT", "50")
	s := newUsageService(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			errs <- s.Increment(ctx)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("increment: %v", err)
		}
	}

	status, err := s.GetStatus(ctx)
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if status.Current != n {
		t.Errorf("count after %d concurrent increments = %d, want %d", n, status.Current, n)
	}
}

func TestIncrement_Exceeded(t *testing.T) {
	t.Setenv("DAILY_USAGE_LIMIT", "2")
	s := newUsageService(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := s.Increment(ctx); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}

	status, err := s.GetStatus(ctx)
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if !status.IsExceeded {
		t.Error("should be exceeded at limit")
	}
	if status.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", status.Remaining)
	}
}

func TestLimit_RereadPerOperation(t *testing.T) {
	t.Setenv("DAILY_USAGE_LIMIT", "50")
	s := newUsageService(t)
	ctx := context.Background()

	status, err := s.GetStatus(ctx)
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if status.Limit != 50 {
		t.Errorf("limit = %d, want 50", status.Limit)
	}

	// 不重启直接调额度
	t.Setenv("DAILY_USAGE_LIMIT", "3")
	status, err = s.GetStatus(ctx)
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if status.Limit != 3 {
		t.Errorf("limit after env change = %d, want 3", status.Limit)
	}
}

func TestLimit_ZeroDisablesGeneration(t *testing.T) {
	t.Setenv("DAILY_USAGE_LIMIT", "0")
	s := newUsageService(t)

	status, err := s.GetStatus(context.Background())
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if status.Limit != 0 {
		t.Errorf("limit = %d, want 0", status.Limit)
	}
	// 0 额度当天一开始就算耗尽
	if !status.IsExceeded {
		t.Error("zero limit should be exceeded from the start")
	}
	if status.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", status.Remaining)
	}
}

func TestLimit_DefaultWhenUnsetOrInvalid(t *testing.T) {
	s := newUsageService(t)

	// 未设置、非数字、负数都回退默认值；0 不在此列
	for _, v := range []string{"", "abc", "-5"} {
		t.Setenv("DAILY_USAGE_LIMIT", v)
		status, err := s.GetStatus(context.Background())
		if err != nil {
			t.Fatalf("get status with %q: %v", v, err)
		}
		if status.Limit != config.DefaultDailyLimit {
			t.Errorf("limit with %q = %d, want default %d", v, status.Limit, config.DefaultDailyLimit)
		}
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"Donghwa/dao"
	"Donghwa/pkg/response"
)

func newLikeService(t *testing.T) (*LikeService, *dao.FairyTaleDAO) {
	t.Helper()
	db := newTestDB(t)
	taleDAO := dao.NewFairyTaleDAO(db)
	return &LikeService{LikeDAO: dao.NewLikeDAO(db), FairyTaleDAO: taleDAO}, taleDAO
}

func TestToggle_Involution(t *testing.T) {
	s, taleDAO := newLikeService(t)
	ctx := context.Background()
	tale := seedTale(t, taleDAO, "좋아요 대상", time.Now())

	first, err := s.Toggle(ctx, tale.ID, "1.2.3.4")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.IsLiked || first.LikeCount != 1 {
		t.Errorf("first toggle = {%v, %d}, want {true, 1}", first.IsLiked, first.LikeCount)
	}

	second, err := s.Toggle(ctx, tale.ID, "1.2.3.4")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.IsLiked || second.LikeCount != 0 {
		t.Errorf("second toggle = {%v, %d}, want {false, 0}", second.IsLiked, second.LikeCount)
	}
}

func TestToggle_CountsPerIp(t *testing.T) {
	s, taleDAO := newLikeService(t)
	ctx := context.Background()
	tale := seedTale(t, taleDAO, "인기 동화", time.Now())

	if _, err := s.Toggle(ctx, tale.ID, "1.1.1.1"); err != nil {
		t.Fatal(err)
	}
	result, err := s.Toggle(ctx, tale.ID, "2.2.2.2")
	if err != nil {
		t.Fatal(err)
	}
	if result.LikeCount != 2 {
		t.Errorf("count = %d, want 2", result.LikeCount)
	}

	// 取消一个 IP 不影响另一个
	result, err = s.Toggle(ctx, tale.ID, "1.1.1.1")
	if err != nil {
		t.Fatal(err)
	}
	if result.IsLiked || result.LikeCount != 1 {
		t.Errorf("after untoggle = {%v, %d}, want {false, 1}", result.IsLiked, result.LikeCount)
	}
}

func TestToggle_TaleNotFound(t *testing.T) {
	s, _ := newLikeService(t)

	_, err := s.Toggle(context.Background(), 999, "1.2.3.4")
	var biz *response.BizError
	if !errors.As(err, &biz) {
		t.Fatalf("want BizError, got %v", err)
	}
	if biz.Code != 404 {
		t.Errorf("code = %d, want 404", biz.Code)
	}
}

func TestStatus(t *testing.T) {
	s, taleDAO := newLikeService(t)
	ctx := context.Background()
	tale := seedTale(t, taleDAO, "상태 조회", time.Now())

	if _, err := s.Toggle(ctx, tale.ID, "1.1.1.1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Toggle(ctx, tale.ID, "2.2.2.2"); err != nil {
		t.Fatal(err)
	}

	mine, err := s.Status(ctx, tale.ID, "1.1.1.1")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !mine.IsLiked || mine.LikeCount != 2 {
		t.Errorf("status = {%v, %d}, want {true, 2}", mine.IsLiked, mine.LikeCount)
	}

	other, err := s.Status(ctx, tale.ID, "3.3.3.3")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if other.IsLiked || other.LikeCount != 2 {
		t.Errorf("status = {%v, %d}, want {false, 2}", other.IsLiked, other.LikeCount)
	}
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"Donghwa/config"
	"Donghwa/dao"
	"Donghwa/middleware"
	"Donghwa/models"
	"Donghwa/pkg/database"
	"Donghwa/pkg/llm"
	"Donghwa/pkg/snowflake"
	"Donghwa/service"
	"Donghwa/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubGenerator struct {
	result *llm.StoryResult
	err    error
	calls  int
}

func (s *stubGenerator) GenerateStory(_ context.Context, _ *types.GenerateFairyTaleRequest) (*llm.StoryResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type testEnv struct {
	engine   *gin.Engine
	taleDAO  *dao.FairyTaleDAO
	adminDAO *dao.AdminDAO
	gen      *stubGenerator
	conf     *config.Config
}

// newTestEnv 起一套完整的路由：sqlite 内存库 + miniredis 限流 + 桩生成器
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	conf := &config.Config{
		Jwt:       &config.Jwt{Secret: "test-secret", ExpiresHour: 1},
		Usage:     &config.Usage{Timezone: "Asia/Seoul"},
		RateLimit: &config.RateLimit{Limit: 1000, WindowSeconds: 60},
	}

	taleDAO := dao.NewFairyTaleDAO(db)
	adminDAO := dao.NewAdminDAO(db)
	gen := &stubGenerator{result: &llm.StoryResult{
		Title: "별빛 모험",
		Story: "별을 따라 떠난 모험 이야기.",
		Scenes: []llm.Scene{
			{Description: "별빛 아래 서 있는 모습", PageNumber: 1},
			{Description: "구름 위를 걷는 모습", PageNumber: 2},
		},
	}}

	usage := &service.UsageService{UsageDAO: dao.NewDailyUsageDAO(db), Config: conf}
	story := &service.StoryService{FairyTaleDAO: taleDAO, Usage: usage, Generator: gen}
	like := &service.LikeService{LikeDAO: dao.NewLikeDAO(db), FairyTaleDAO: taleDAO}
	auth := &service.AuthService{AdminDAO: adminDAO, Config: conf}
	oss := &service.OssService{Config: nil}
	pdf := &service.PdfService{FairyTaleDAO: taleDAO, Oss: oss}

	engine := gin.New()
	api := engine.Group("/api")
	(&Usage{UsageService: usage}).RegisterRouter(api)
	(&FairyTale{
		StoryService: story,
		LikeService:  like,
		PdfService:   pdf,
		Limiter:      middleware.NewRateLimiter(rdb, conf),
	}).RegisterRouter(api)
	(&Admin{StoryService: story, AuthService: auth, Config: conf}).RegisterRouter(api)

	return &testEnv{engine: engine, taleDAO: taleDAO, adminDAO: adminDAO, gen: gen, conf: conf}
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "1.2.3.4:5678"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, &env
}

func (e *testEnv) seedTale(t *testing.T, title string) *models.FairyTale {
	t.Helper()
	tale := &models.FairyTale{
		ID:                uint64(snowflake.GenID()),
		Title:             title,
		Story:             "이야기",
		IllustrationStyle: "수채화",
		IsPublic:          true,
		IsApproved:        true,
		CreatedAt:         time.Now(),
	}
	if err := tale.SetEmotions([]string{"기쁨"}); err != nil {
		t.Fatal(err)
	}
	if err := tale.SetIllustrations([]models.Illustration{}); err != nil {
		t.Fatal(err)
	}
	if err := e.taleDAO.Create(context.Background(), tale); err != nil {
		t.Fatalf("seed tale: %v", err)
	}
	return tale
}

func (e *testEnv) setApproval(t *testing.T, id uint64, approved bool) {
	t.Helper()
	if err := e.taleDAO.UpdateApproval(context.Background(), id, approved); err != nil {
		t.Fatal(err)
	}
}

func (e *testEnv) seedAdmin(t *testing.T, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	admin := &models.Admin{
		ID:           uint64(snowflake.GenID()),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := e.adminDAO.Create(context.Background(), admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
}

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"Donghwa/config"
	"Donghwa/pkg/log"
	"Donghwa/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// RateLimiter 生成接口的单 IP 固定窗口限流，Redis 计数。
// Redis 不可用时拒绝请求（fail closed）。
type RateLimiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRateLimiter(rdb *redis.Client, conf *config.Config) *RateLimiter {
	return &RateLimiter{
		redis:  rdb,
		limit:  conf.RateLimit.GetLimit(),
		window: conf.RateLimit.Window(),
		prefix: "donghwa:ratelimit",
	}
}

func (l *RateLimiter) Allow(key string) bool {
	if key == "" {
		key = "unknown"
	}
	windowMs := l.window.Milliseconds()
	windowSlot := time.Now().UTC().UnixMilli() / windowMs
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, windowSlot)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	res, err := fixedWindowScript.Run(ctx, l.redis, []string{redisKey}, windowMs).Int64()
	if err != nil {
		log.L.Error("rate limiter redis error", zap.Error(err))
		return false
	}
	return res <= int64(l.limit)
}

func (l *RateLimiter) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			response.Abort(c, http.StatusTooManyRequests, "요청이 너무 많습니다. 잠시 후 다시 시도해주세요.")
			return
		}
		c.Next()
	}
}

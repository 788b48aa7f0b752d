package middleware

import (
	"net/http"

	"Donghwa/config"
	"Donghwa/pkg/response"

	"github.com/gin-gonic/gin"
)

// Secure 每个响应都带安全头
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("X-XSS-Protection", "1; mode=block")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Writer.Header().Set("Content-Security-Policy",
			"default-src 'self'; script-src 'self' 'unsafe-inline' 'unsafe-eval'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; font-src 'self' data:;")

		c.Next()
	}
}

// RequireAIKey 生成路由的前置检查：没配 Key 直接 500，不做任何工作
func RequireAIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.GeminiAPIKey() == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
				Code: http.StatusInternalServerError,
				Msg:  "서버 설정에 문제가 있습니다. 관리자에게 문의해주세요.",
			})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"Donghwa/pkg/context"
	"Donghwa/pkg/jwt"
	"Donghwa/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 管理端路由的 JWT 校验
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "Authorization이 없습니다")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 형식이 올바르지 않습니다")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxAdminID, claims.AdminID)
		c.Set(context.CtxUsername, claims.Username)

		c.Next()
	}
}

package context

import (
	"errors"
	"net/http"

	"Donghwa/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxAdminID  = "admin_id"
	CtxUsername = "username"
)

// 生产环境下 5xx 统一文案，4xx 原样返回
const internalErrorMsg = "서버 내부 오류가 발생했습니다."

var production bool

// SetProduction 由启动流程设置，生产环境收敛 5xx 错误信息
func SetProduction(on bool) {
	production = on
}

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			// 挂到 gin 的错误链上，请求日志统一（打码后）输出
			_ = c.Error(err)

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			status := http.StatusInternalServerError
			msg := err.Error()

			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				status = be.Code
				msg = be.Msg
			}
			if production && status >= http.StatusInternalServerError {
				msg = internalErrorMsg
			}
			response.Fail(c, status, msg)
		}
	}
}

// ClientIdentifier 点赞去重用的客户端标识，取网络来源 IP
func ClientIdentifier(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

func GetAdminID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxAdminID)
	if !ok {
		return 0, errors.New("admin_id 不存在")
	}

	id, ok := v.(uint64)
	if !ok {
		return 0, errors.New("admin_id 类型错误")
	}

	return id, nil
}

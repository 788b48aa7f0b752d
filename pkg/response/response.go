package response

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, Response{
		Code: code,
		Msg:  Redact(msg),
	})
}

// 密钥形态的子串统一打码后再出站
var apiKeyPattern = regexp.MustCompile(`(sk-[a-zA-Z0-9]+|AIza[a-zA-Z0-9_\-]+)`)

// Redact 去除错误信息里的 API Key
func Redact(msg string) string {
	return apiKeyPattern.ReplaceAllString(msg, "[API_KEY_HIDDEN]")
}

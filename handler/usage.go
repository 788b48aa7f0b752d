package handler

import (
	"Donghwa/pkg/context"
	"Donghwa/pkg/response"
	"Donghwa/service"

	"github.com/gin-gonic/gin"
)

type Usage struct {
	UsageService service.IUsageService
}

func (h *Usage) RegisterRouter(r gin.IRouter) {
	g := r.Group("/usage")
	g.GET("/status", context.Wrap(h.Status))
}

func (h *Usage) Status(c *gin.Context) error {
	status, err := h.UsageService.GetStatus(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, status)
	return nil
}

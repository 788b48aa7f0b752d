package handler

import (
	"net/http"

	"Donghwa/config"
	"Donghwa/middleware"
	"Donghwa/pkg/context"
	"Donghwa/pkg/log"
	"Donghwa/pkg/response"
	"Donghwa/service"
	"Donghwa/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Admin struct {
	StoryService service.IStoryService
	AuthService  service.IAuthService
	Config       *config.Config
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	g := r.Group("/admin")
	g.POST("/login", context.Wrap(h.Login))

	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	tales := g.Group("/fairy-tales", authorize)
	tales.GET("", context.Wrap(h.List))
	tales.PATCH("/:id/approve", context.Wrap(h.Approve))
	tales.PATCH("/:id/reject", context.Wrap(h.Reject))
	tales.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Admin) Login(c *gin.Context) error {
	var req types.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "요청 형식이 올바르지 않습니다: "+err.Error())
	}
	result, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

// List 管理端全量列表，含未审核与未公开
func (h *Admin) List(c *gin.Context) error {
	tales, err := h.StoryService.AdminList(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, tales)
	return nil
}

func (h *Admin) Approve(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.StoryService.SetApproval(c.Request.Context(), id, true); err != nil {
		return err
	}
	moderationLog(c, "approve", id)
	response.Success(c, gin.H{"id": id, "isApproved": true})
	return nil
}

func (h *Admin) Reject(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.StoryService.SetApproval(c.Request.Context(), id, false); err != nil {
		return err
	}
	moderationLog(c, "reject", id)
	response.Success(c, gin.H{"id": id, "isApproved": false})
	return nil
}

func (h *Admin) Delete(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.StoryService.Delete(c.Request.Context(), id); err != nil {
		return err
	}
	moderationLog(c, "delete", id)
	response.Success(c, gin.H{"id": id, "deleted": true})
	return nil
}

// moderationLog 审核动作留痕，记录操作的管理员
func moderationLog(c *gin.Context, action string, taleID uint64) {
	adminID, err := context.GetAdminID(c)
	if err != nil {
		return
	}
	log.L.Info("moderation action",
		zap.String("action", action),
		zap.Uint64("admin_id", adminID),
		zap.String("admin", c.GetString(context.CtxUsername)),
		zap.Uint64("tale_id", taleID))
}

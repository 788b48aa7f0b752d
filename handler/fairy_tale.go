package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"Donghwa/middleware"
	"Donghwa/pkg/context"
	"Donghwa/pkg/response"
	"Donghwa/service"
	"Donghwa/types"

	"github.com/gin-gonic/gin"
)

type FairyTale struct {
	StoryService service.IStoryService
	LikeService  service.ILikeService
	PdfService   service.IPdfService
	Limiter      *middleware.RateLimiter
}

func (h *FairyTale) RegisterRouter(r gin.IRouter) {
	g := r.Group("/fairy-tales")
	g.POST("/generate", middleware.RequireAIKey(), h.Limiter.Handle(), context.Wrap(h.Generate))
	g.GET("", context.Wrap(h.List))
	g.GET("/:id", context.Wrap(h.Get))
	g.POST("/:id/like", context.Wrap(h.ToggleLike))
	g.GET("/:id/likes", context.Wrap(h.Likes))
	g.PATCH("/:id/publish", context.Wrap(h.Publish))
	g.POST("/:id/regenerate-illustrations", context.Wrap(h.RegenerateIllustrations))
	g.POST("/:id/pdf", context.Wrap(h.UploadPdf))
	g.DELETE("/:id", context.Wrap(h.Delete))
}

// Generate 生成童话
func (h *FairyTale) Generate(c *gin.Context) error {
	var req types.GenerateFairyTaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "요청 형식이 올바르지 않습니다: "+err.Error())
	}
	if len(req.Emotions) == 0 {
		return response.NewError(http.StatusBadRequest, "emotions: 최소 1개의 감정을 선택해주세요")
	}
	if req.IllustrationStyle == "" {
		return response.NewError(http.StatusBadRequest, "illustrationStyle: 일러스트 스타일을 선택해주세요")
	}
	if !types.ValidGender(req.CharacterGender) {
		return response.NewError(http.StatusBadRequest, "characterGender: 남성/여성/상관없음 중 하나여야 합니다")
	}

	resp, err := h.StoryService.Generate(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// List 公共画廊
func (h *FairyTale) List(c *gin.Context) error {
	tales, err := h.StoryService.Gallery(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, tales)
	return nil
}

func (h *FairyTale) Get(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	tale, err := h.StoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, tale)
	return nil
}

func (h *FairyTale) ToggleLike(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	result, err := h.LikeService.Toggle(c.Request.Context(), id, context.ClientIdentifier(c))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *FairyTale) Likes(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	result, err := h.LikeService.Status(c.Request.Context(), id, context.ClientIdentifier(c))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *FairyTale) Publish(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.StoryService.Publish(c.Request.Context(), id); err != nil {
		return err
	}
	response.Success(c, gin.H{"id": id, "isPublic": true})
	return nil
}

func (h *FairyTale) RegenerateIllustrations(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	tale, err := h.StoryService.RegenerateIllustrations(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, tale)
	return nil
}

func (h *FairyTale) Delete(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.StoryService.Delete(c.Request.Context(), id); err != nil {
		return err
	}
	response.Success(c, gin.H{"id": id, "deleted": true})
	return nil
}

// UploadPdf 浏览器打印出来的 PDF 存档
func (h *FairyTale) UploadPdf(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile("pdf")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "pdf 파일이 필요합니다")
	}
	const maxSize = 10 << 20
	if header.Size <= 0 || header.Size > maxSize {
		return response.NewError(http.StatusBadRequest, "PDF는 10MB 이하여야 합니다")
	}

	file, err := header.Open()
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	defer file.Close()

	// 前 512 字节嗅探，别信扩展名
	head := make([]byte, 512)
	n, _ := file.Read(head)
	if http.DetectContentType(head[:n]) != "application/pdf" {
		return response.NewError(http.StatusBadRequest, "PDF 형식이 아닙니다")
	}
	if _, err := file.Seek(0, 0); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	tale, err := h.PdfService.AttachPdf(c.Request.Context(), id, file)
	if err != nil {
		return err
	}
	response.Success(c, tale)
	return nil
}

func parseID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, fmt.Sprintf("잘못된 ID입니다: %s", c.Param("id")))
	}
	return id, nil
}

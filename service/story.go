package service

import (
	"context"
	"net/http"

	"Donghwa/dao"
	"Donghwa/models"
	"Donghwa/pkg/llm"
	"Donghwa/pkg/log"
	"Donghwa/pkg/response"
	"Donghwa/pkg/snowflake"
	"Donghwa/types"

	"go.uber.org/zap"
)

var _ IStoryService = (*StoryService)(nil)

// IStoryGenerator 故事生成器，线上是 Gemini，测试用桩替换
type IStoryGenerator interface {
	GenerateStory(ctx context.Context, req *types.GenerateFairyTaleRequest) (*llm.StoryResult, error)
}

type IStoryService interface {
	Generate(ctx context.Context, req *types.GenerateFairyTaleRequest) (*types.GenerateFairyTaleResponse, error)
	GetByID(ctx context.Context, id uint64) (*models.FairyTale, error)
	Gallery(ctx context.Context) ([]*models.FairyTale, error)
	Publish(ctx context.Context, id uint64) error
	Delete(ctx context.Context, id uint64) error
	RegenerateIllustrations(ctx context.Context, id uint64) (*models.FairyTale, error)
	AdminList(ctx context.Context) ([]*models.FairyTale, error)
	SetApproval(ctx context.Context, id uint64, approved bool) error
}

const galleryPageSize = 50

type StoryService struct {
	FairyTaleDAO *dao.FairyTaleDAO
	Usage        IUsageService
	Generator    IStoryGenerator
}

// Generate 生成一篇童话并落库。
// 额度已用尽走保底模板（不计数）；未用尽先占额度再调模型，
// 在途请求导致的轻微超限是接受的软限制。
func (s *StoryService) Generate(ctx context.Context, req *types.GenerateFairyTaleRequest) (*types.GenerateFairyTaleResponse, error) {
	status, err := s.Usage.GetStatus(ctx)
	if err != nil {
		return nil, err
	}

	usingFallback := status.IsExceeded
	var result *llm.StoryResult
	if usingFallback {
		result = FallbackStory(req.Emotions, req.CharacterName)
		log.L.Warn("daily limit exceeded, using fallback story",
			zap.String("title", result.Title), zap.Int("current", status.Current))
	} else {
		if err := s.Usage.Increment(ctx); err != nil {
			return nil, err
		}
		result, err = s.Generator.GenerateStory(ctx, req)
		if err != nil {
			return nil, err
		}
		log.L.Info("personalized story generated",
			zap.String("title", result.Title), zap.Strings("emotions", req.Emotions))
	}

	illustrations := BuildIllustrations(result.Scenes, usingFallback, req.Emotions)

	tale := &models.FairyTale{
		ID:                uint64(snowflake.GenID()),
		Title:             result.Title,
		Story:             result.Story,
		IllustrationStyle: req.IllustrationStyle,
		AuthorName:        "AI 동화 작가",
		CharacterName:     nilIfEmpty(req.CharacterName),
		CharacterAge:      nilIfEmpty(req.CharacterAge),
		CharacterGender:   nilIfEmpty(req.CharacterGender),
		FavoriteAnimal:    nilIfEmpty(req.FavoriteAnimal),
		FavoriteColor:     nilIfEmpty(req.FavoriteColor),
		Hobbies:           nilIfEmpty(req.Hobbies),
		Interests:         nilIfEmpty(req.Interests),
		SpecialSituation:  nilIfEmpty(req.SpecialSituation),
		FavoriteThings:    nilIfEmpty(req.FavoriteThings),
		DreamOrGoal:       nilIfEmpty(req.DreamOrGoal),
		IsPublic:          true,
		IsApproved:        true,
	}
	if err := tale.SetEmotions(req.Emotions); err != nil {
		return nil, err
	}
	if err := tale.SetIllustrations(illustrations); err != nil {
		return nil, err
	}

	if err := s.FairyTaleDAO.Create(ctx, tale); err != nil {
		return nil, err
	}

	resp := &types.GenerateFairyTaleResponse{FairyTale: tale, UsingFallback: usingFallback}
	if usingFallback {
		resp.FallbackMessage = FallbackMessage()
	}
	return resp, nil
}

func (s *StoryService) GetByID(ctx context.Context, id uint64) (*models.FairyTale, error) {
	tale, err := s.FairyTaleDAO.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tale == nil {
		return nil, response.NewError(http.StatusNotFound, "동화를 찾을 수 없습니다")
	}
	return tale, nil
}

func (s *StoryService) Gallery(ctx context.Context) ([]*models.FairyTale, error) {
	return s.FairyTaleDAO.FindGallery(ctx, galleryPageSize)
}

// Publish 标记可分享。创建时已公开，这一步是前端确认动作
func (s *StoryService) Publish(ctx context.Context, id uint64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.FairyTaleDAO.UpdatePublic(ctx, id, true)
}

func (s *StoryService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.FairyTaleDAO.DeleteCascade(ctx, id)
}

// RegenerateIllustrations 只补 url 为空的页
func (s *StoryService) RegenerateIllustrations(ctx context.Context, id uint64) (*models.FairyTale, error) {
	tale, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	emotions := tale.GetEmotions()
	illustrations := tale.GetIllustrations()
	changed := false
	for i, item := range illustrations {
		if item.URL != "" {
			continue
		}
		rendered, renderErr := RenderSceneSVG(item.Description, emotions)
		if renderErr != nil {
			log.L.Error("failed to render illustration", zap.Int("page", item.Page), zap.Error(renderErr))
			continue
		}
		illustrations[i].URL = rendered
		changed = true
	}

	if changed {
		if err := tale.SetIllustrations(illustrations); err != nil {
			return nil, err
		}
		if err := s.FairyTaleDAO.UpdateIllustrations(ctx, id, tale.Illustrations); err != nil {
			return nil, err
		}
	}
	return tale, nil
}

func (s *StoryService) AdminList(ctx context.Context) ([]*models.FairyTale, error) {
	return s.FairyTaleDAO.FindAll(ctx)
}

func (s *StoryService) SetApproval(ctx context.Context, id uint64, approved bool) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.FairyTaleDAO.UpdateApproval(ctx, id, approved)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

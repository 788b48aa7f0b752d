package service

import (
	"fmt"
	"net/url"

	"Donghwa/models"
	"Donghwa/pkg/llm"
	"Donghwa/pkg/log"

	"go.uber.org/zap"
)

// 情绪 → 插画主色
var emotionColors = map[string]string{
	"기쁨": "#FFD700",
	"사랑": "#FF69B4",
	"신남": "#32CD32",
	"평온": "#87CEEB",
	"슬픔": "#4682B4",
	"화남": "#DC143C",
}

const defaultColor = "#6B73FF"

// BuildIllustrations 按场景生成插画占位。
// 保底模式统一空 url（前端视为待生成）；正常模式单页失败只降级该页。
func BuildIllustrations(scenes []llm.Scene, usingFallback bool, emotions []string) []models.Illustration {
	items := make([]models.Illustration, 0, len(scenes))
	for _, scene := range scenes {
		pageURL := ""
		if !usingFallback {
			rendered, err := RenderSceneSVG(scene.Description, emotions)
			if err != nil {
				log.L.Error("failed to render illustration", zap.Int("page", scene.PageNumber), zap.Error(err))
			} else {
				pageURL = rendered
			}
		}
		items = append(items, models.Illustration{
			URL:         pageURL,
			Description: scene.Description,
			Page:        scene.PageNumber,
		})
	}
	return items
}

// RenderSceneSVG 生成占位 SVG 的 data URL，主色取第一个情绪
func RenderSceneSVG(description string, emotions []string) (string, error) {
	if description == "" {
		return "", fmt.Errorf("empty scene description")
	}

	primary := defaultColor
	if len(emotions) > 0 {
		if c, ok := emotionColors[emotions[0]]; ok {
			primary = c
		}
	}

	label := description
	if runes := []rune(label); len(runes) > 20 {
		label = string(runes[:20])
	}

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 300">`+
			`<rect width="400" height="300" fill="%s20"/>`+
			`<circle cx="200" cy="150" r="50" fill="%s"/>`+
			`<text x="200" y="250" text-anchor="middle" font-family="serif" font-size="14" fill="#333">%s...</text>`+
			`</svg>`,
		primary, primary, label)

	return "data:image/svg+xml," + url.PathEscape(svg), nil
}

package llm

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// 解析失败对该次请求是硬失败，不重试不降级
var ErrParseFailed = errors.New("AI 응답 파싱에 실패했습니다.")

// ParseStory 从模型输出中提取 title/story/scenes。
// 模型偶尔会包一层 markdown 代码围栏，先剥掉再解析。
func ParseStory(text string) (*StoryResult, error) {
	raw := stripCodeFence(text)
	if !gjson.Valid(raw) {
		return nil, ErrParseFailed
	}

	doc := gjson.Parse(raw)
	title := doc.Get("title").String()
	story := doc.Get("story").String()
	scenes := doc.Get("scenes")
	if title == "" || story == "" || !scenes.IsArray() {
		return nil, ErrParseFailed
	}

	result := &StoryResult{Title: title, Story: story}
	for _, s := range scenes.Array() {
		desc := s.Get("description").String()
		page := int(s.Get("pageNumber").Int())
		if desc == "" || page <= 0 {
			return nil, ErrParseFailed
		}
		result.Scenes = append(result.Scenes, Scene{Description: desc, PageNumber: page})
	}
	if len(result.Scenes) == 0 {
		return nil, ErrParseFailed
	}
	return result, nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

package service

import (
	"fmt"

	"Donghwa/pkg/llm"
)

// FallbackStory 额度用尽时的保底童话，纯函数，
// 固定模板 + 主角名替换，固定 3 页插画描述。
func FallbackStory(emotions []string, characterName string) *llm.StoryResult {
	name := characterName
	subject := name
	pronoun := name
	child := name
	if name == "" {
		subject = "한 아이"
		pronoun = "그 아이"
		child = "아이"
	}

	title := "용감한 친구의 모험"
	if name != "" {
		title = fmt.Sprintf("%s의 모험", name)
	}

	story := fmt.Sprintf(
		"옛날 옛적에 %s가 살고 있었습니다. 어느 날 %s는 숲에서 길을 잃었지만, 용기를 내어 집으로 돌아가는 길을 찾았습니다. "+
			"그 과정에서 많은 친구들을 만나고 도움을 받으며, 결국 무사히 집에 돌아올 수 있었습니다. "+
			"%s는 이 경험을 통해 용기와 친절의 소중함을 배웠습니다.",
		subject, pronoun, child)

	return &llm.StoryResult{
		Title: title,
		Story: story,
		Scenes: []llm.Scene{
			{Description: fmt.Sprintf("%s가 숲에서 길을 찾고 있는 모습", child), PageNumber: 1},
			{Description: fmt.Sprintf("%s가 숲 속 친구들과 만나는 모습", child), PageNumber: 2},
			{Description: fmt.Sprintf("%s가 집에 돌아가는 모습", child), PageNumber: 3},
		},
	}
}

func FallbackMessage() string {
	return "오늘의 AI 마법이 모두 소진되어 요정이 직접 만든 특별한 동화를 선물로 드려요! 🧚‍♀️✨"
}

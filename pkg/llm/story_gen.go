package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Donghwa/config"
	"Donghwa/pkg/log"
	"Donghwa/types"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

type Scene struct {
	Description string `json:"description"`
	PageNumber  int    `json:"pageNumber"`
}

type StoryResult struct {
	Title  string  `json:"title"`
	Story  string  `json:"story"`
	Scenes []Scene `json:"scenes"`
}

var ErrNoAPIKey = errors.New("AI API Key가 설정되지 않았습니다")

type Generator struct {
	conf *config.Config
}

func NewGenerator(conf *config.Config) *Generator {
	return &Generator{conf: conf}
}

// GenerateStory 调 Gemini(OpenAI 兼容模式)生成童话。
// 客户端按次构建，API Key 每次调用前重新读环境变量。
func (g *Generator) GenerateStory(ctx context.Context, req *types.GenerateFairyTaleRequest) (*StoryResult, error) {
	apiKey := config.GeminiAPIKey()
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(g.conf.AI.GetBaseURL()),
	)

	prompt := BuildStoryPrompt(req)
	params := openai.ChatCompletionNewParams{
		Model: g.conf.AI.GetModel(),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}

	startTime := time.Now()
	completion, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		log.L.Error("failed to gen story", zap.Error(err))
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("AI 응답이 비어 있습니다")
	}
	content := completion.Choices[0].Message.Content
	log.L.Info("gen story", zap.Int("chars", len(content)), zap.Duration("gen time", time.Since(startTime)))

	return ParseStory(content)
}

// BuildStoryPrompt 拼生成提示词，个性化字段只有填了才追加
func BuildStoryPrompt(req *types.GenerateFairyTaleRequest) string {
	var personalization strings.Builder
	appendLine := func(label, value string) {
		if value != "" {
			personalization.WriteString(fmt.Sprintf("%s: %s\n", label, value))
		}
	}
	appendLine("주인공의 이름", req.CharacterName)
	appendLine("주인공의 나이", req.CharacterAge)
	if req.CharacterGender != "" && req.CharacterGender != types.GenderAny {
		appendLine("주인공의 성별", req.CharacterGender)
	}
	appendLine("좋아하는 동물", req.FavoriteAnimal)
	appendLine("좋아하는 색깔", req.FavoriteColor)
	appendLine("취미", req.Hobbies)
	appendLine("관심사", req.Interests)
	appendLine("특별한 상황", req.SpecialSituation)
	appendLine("좋아하는 것들", req.FavoriteThings)
	appendLine("꿈이나 목표", req.DreamOrGoal)

	personalizationContext := ""
	if personalization.Len() > 0 {
		personalizationContext = fmt.Sprintf("개인화 정보:\n%s", personalization.String())
	}

	return fmt.Sprintf(`당신은 창의적인 동화 작가입니다. 주어진 감정과 개인화 정보를 바탕으로 따뜻하고 교훈적인 동화를 만들어주세요.

감정: %s
일러스트 스타일: %s

%s

다음 JSON 형식으로 응답해주세요:
{
  "title": "동화 제목",
  "story": "완전한 동화 내용 (최소 500자, 단락별로 구분)",
  "scenes": [
    {
      "description": "첫 번째 장면 묘사",
      "pageNumber": 1
    },
    {
      "description": "두 번째 장면 묘사",
      "pageNumber": 2
    },
    {
      "description": "세 번째 장면 묘사",
      "pageNumber": 3
    }
  ]
}

요구사항:
1. 한국어로 작성
2. 아이들에게 적합한 내용
3. 주어진 감정을 자연스럽게 표현
4. 교훈이나 긍정적 메시지 포함
5. 개인화 정보가 있다면 자연스럽게 스토리에 반영`,
		strings.Join(req.Emotions, ", "), req.IllustrationStyle, personalizationContext)
}

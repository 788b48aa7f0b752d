package types

import "Donghwa/models"

// GenerateFairyTaleRequest 生成童话请求体。
// 除 emotions / illustrationStyle 外均为可选的个性化信息，自由文本透传，
// 仅 characterGender 限定枚举。
type GenerateFairyTaleRequest struct {
	Emotions          []string `json:"emotions"`
	IllustrationStyle string   `json:"illustrationStyle"`
	CharacterName     string   `json:"characterName"`
	CharacterAge      string   `json:"characterAge"`
	CharacterGender   string   `json:"characterGender"`
	FavoriteAnimal    string   `json:"favoriteAnimal"`
	FavoriteColor     string   `json:"favoriteColor"`
	Hobbies           string   `json:"hobbies"`
	Interests         string   `json:"interests"`
	SpecialSituation  string   `json:"specialSituation"`
	FavoriteThings    string   `json:"favoriteThings"`
	DreamOrGoal       string   `json:"dreamOrGoal"`
}

// 性别枚举
const (
	GenderMale   = "남성"
	GenderFemale = "여성"
	GenderAny    = "상관없음"
)

func ValidGender(g string) bool {
	return g == "" || g == GenderMale || g == GenderFemale || g == GenderAny
}

type GenerateFairyTaleResponse struct {
	*models.FairyTale
	UsingFallback   bool   `json:"usingFallback"`
	FallbackMessage string `json:"fallbackMessage,omitempty"`
}

type LikeResponse struct {
	IsLiked   bool  `json:"isLiked"`
	LikeCount int64 `json:"likeCount"`
}

package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Illustration 单页插画占位，url 为空表示待生成/不可用
type Illustration struct {
	URL         string `json:"url"`
	Description string `json:"description"`
	Page        int    `json:"page"`
}

// FairyTale 生成的童话
// 对应表 fairy_tales
// 创建即 is_public + is_approved（先发布后治理，管理端负责下架）
type FairyTale struct {
	ID                uint64         `gorm:"column:id;primary_key" json:"id"`
	Title             string         `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Story             string         `gorm:"column:story;type:text;not null" json:"story"`
	Emotions          datatypes.JSON `gorm:"column:emotions;not null" json:"emotions"`
	IllustrationStyle string         `gorm:"column:illustration_style;type:varchar(50);not null" json:"illustrationStyle"`
	Illustrations     datatypes.JSON `gorm:"column:illustrations" json:"illustrations"`
	AuthorName        string         `gorm:"column:author_name;type:varchar(50)" json:"authorName"`
	CharacterName     *string        `gorm:"column:character_name;type:varchar(50)" json:"characterName"`
	CharacterAge      *string        `gorm:"column:character_age;type:varchar(20)" json:"characterAge"`
	CharacterGender   *string        `gorm:"column:character_gender;type:varchar(10)" json:"characterGender"`
	FavoriteAnimal    *string        `gorm:"column:favorite_animal;type:varchar(50)" json:"favoriteAnimal"`
	FavoriteColor     *string        `gorm:"column:favorite_color;type:varchar(50)" json:"favoriteColor"`
	Hobbies           *string        `gorm:"column:hobbies;type:varchar(200)" json:"hobbies"`
	Interests         *string        `gorm:"column:interests;type:varchar(200)" json:"interests"`
	SpecialSituation  *string        `gorm:"column:special_situation;type:varchar(500)" json:"specialSituation"`
	FavoriteThings    *string        `gorm:"column:favorite_things;type:varchar(200)" json:"favoriteThings"`
	DreamOrGoal       *string        `gorm:"column:dream_or_goal;type:varchar(200)" json:"dreamOrGoal"`
	IsPublic          bool           `gorm:"column:is_public;not null;default:true;index:idx_public_approved,priority:1" json:"isPublic"`
	IsApproved        bool           `gorm:"column:is_approved;not null;default:true;index:idx_public_approved,priority:2" json:"isApproved"`
	PdfUrl            *string        `gorm:"column:pdf_url;type:varchar(500)" json:"pdfUrl"`
	CreatedAt         time.Time      `gorm:"column:created_at;index:idx_created_at" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"column:updated_at" json:"updatedAt"`
}

func (f FairyTale) TableName() string { return "fairy_tales" }

func (f *FairyTale) GetEmotions() []string {
	var emotions []string
	_ = json.Unmarshal(f.Emotions, &emotions)
	return emotions
}

func (f *FairyTale) SetEmotions(emotions []string) error {
	raw, err := json.Marshal(emotions)
	if err != nil {
		return err
	}
	f.Emotions = raw
	return nil
}

func (f *FairyTale) GetIllustrations() []Illustration {
	var items []Illustration
	_ = json.Unmarshal(f.Illustrations, &items)
	return items
}

func (f *FairyTale) SetIllustrations(items []Illustration) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	f.Illustrations = raw
	return nil
}

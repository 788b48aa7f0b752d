package config

import "os"

// AI 文生故事模型配置。API Key 不落配置文件，
// 每次调用前从环境变量读取，支持不重启换 Key。
type AI struct {
	BaseURL string `json:"base_url" yaml:"base_url"`
	Model   string `json:"model" yaml:"model"`
}

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	defaultModel   = "gemini-2.0-flash"
)

func (a *AI) GetBaseURL() string {
	if a == nil || a.BaseURL == "" {
		return defaultBaseURL
	}
	return a.BaseURL
}

func (a *AI) GetModel() string {
	if a == nil || a.Model == "" {
		return defaultModel
	}
	return a.Model
}

// GeminiAPIKey 读取当前生效的 API Key，GEMINI_API_KEY 优先
func GeminiAPIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}

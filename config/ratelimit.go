package config

import "time"

// RateLimit 生成接口的单 IP 限流窗口
type RateLimit struct {
	Limit         int `json:"limit" yaml:"limit"`
	WindowSeconds int `json:"window_seconds" yaml:"window_seconds"`
}

func (r *RateLimit) GetLimit() int {
	if r == nil || r.Limit <= 0 {
		return 5
	}
	return r.Limit
}

func (r *RateLimit) Window() time.Duration {
	if r == nil || r.WindowSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(r.WindowSeconds) * time.Second
}

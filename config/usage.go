package config

import (
	"os"
	"strconv"
	"time"
)

// Usage 每日生成额度配置。额度每次操作时从环境变量重新读取，
// 线上调整 DAILY_USAGE_LIMIT 后无需重启即可生效。
type Usage struct {
	Timezone string `json:"timezone" yaml:"timezone"`
}

const DefaultDailyLimit = 50

// DailyLimit 当前生效的每日额度。0 是合法值：当天直接全走保底，
// 相当于紧急停用 AI 生成。只有未设置或解析失败才回退默认值。
func (u *Usage) DailyLimit() int {
	v := os.Getenv("DAILY_USAGE_LIMIT")
	if v == "" {
		return DefaultDailyLimit
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return DefaultDailyLimit
	}
	return n
}

// Location 日期归属时区，默认首尔
func (u *Usage) Location() *time.Location {
	name := "Asia/Seoul"
	if u != nil && u.Timezone != "" {
		name = u.Timezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

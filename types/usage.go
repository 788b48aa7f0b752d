package types

// UsageStatus 当天额度使用情况
type UsageStatus struct {
	Current    int    `json:"current"`
	Limit      int    `json:"limit"`
	Remaining  int    `json:"remaining"`
	IsExceeded bool   `json:"isExceeded"`
	Date       string `json:"date"`
}

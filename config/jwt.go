package config

type Jwt struct {
	Secret      string `json:"secret" yaml:"secret"`
	ExpiresHour int    `json:"expires_hour" yaml:"expires_hour"`
}

package config

type OssConfig struct {
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	Region   string `json:"region" yaml:"region"`
	Bucket   string `json:"bucket" yaml:"bucket"`
}

// Enabled OSS 未配置时 PDF 上传直接返回 503
func (o *OssConfig) Enabled() bool {
	return o != nil && o.Bucket != "" && o.Endpoint != ""
}

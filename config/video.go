package config

// VideoConfig 视频平台（YouTube）配置
type VideoConfig struct {
	APIKey string `json:"api_key" yaml:"api_key"`
}

func ProvideVideoConfig(cfg *Config) *VideoConfig {
	return cfg.Video
}

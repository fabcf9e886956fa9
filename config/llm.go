package config

// LlmConfig 大模型接口配置（OpenAI 兼容）
type LlmConfig struct {
	APIKey  string `json:"api_key" yaml:"api_key"`
	BaseURL string `json:"base_url" yaml:"base_url"`
	Model   string `json:"model" yaml:"model"`
}

func ProvideLlmConfig(cfg *Config) *LlmConfig {
	return cfg.Llm
}

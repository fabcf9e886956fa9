package config

// CatalogConfig 音乐曲库（Spotify）配置
type CatalogConfig struct {
	ClientID     string `json:"client_id" yaml:"client_id"`
	ClientSecret string `json:"client_secret" yaml:"client_secret"`
}

func ProvideCatalogConfig(cfg *Config) *CatalogConfig {
	return cfg.Catalog
}

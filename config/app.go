package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	Name  string `json:"name" yaml:"name"`
	Salt  string `json:"salt" yaml:"salt"` // 分享码混淆盐
}

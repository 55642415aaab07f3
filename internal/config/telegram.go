package config

type TelegramConfig struct {
	ApiToken string `yaml:"token" env:"TELEGRAM_TOKEN"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

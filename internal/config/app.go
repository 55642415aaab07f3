package config

import "time"

const (
	defaultBaseCurrency        = "RUB"
	defaultPullingDelayMinutes = 60
)

type AppConfig struct {
	BaseCurrencyName        string             `yaml:"base-currency"`
	RatePullingDelayMinutes int64              `yaml:"rate-pulling-delay-minutes" env:"RATE_PULLING_DELAY_MINUTES"`
	StartRates              map[string]float64 `yaml:"initial-rates"`
}

func (s *AppConfig) BaseCurrency() string {
	return s.BaseCurrencyName
}

func (s *AppConfig) PullingDelay() time.Duration {
	return time.Duration(s.RatePullingDelayMinutes) * time.Minute
}

func (s *AppConfig) InitialRates() map[string]float64 {
	return s.StartRates
}

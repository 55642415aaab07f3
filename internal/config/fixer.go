package config

import "time"

const (
	defaultFixerUrl          = "https://api.apilayer.com/fixer/latest"
	defaultRequestsPerMinute = 10
)

type FixerConfig struct {
	FixerApiKey       string `yaml:"api-key" env:"FIXER_API_KEY"`
	Url               string `yaml:"url" env:"FIXER_URL"`
	RequestsPerMinute int    `yaml:"requests-per-minute"`
}

func (f *FixerConfig) ApiKey() string {
	return f.FixerApiKey
}

func (f *FixerConfig) LatestRatesUrl() string {
	return f.Url
}

// RequestInterval is the minimal delay between two provider requests.
func (f *FixerConfig) RequestInterval() time.Duration {
	return time.Minute / time.Duration(f.RequestsPerMinute)
}

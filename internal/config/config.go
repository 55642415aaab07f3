package config

import (
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configFile = "data/config.yaml"

type config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Fixer    FixerConfig    `yaml:"fixer"`
	App      AppConfig      `yaml:"app"`
	Storage  StorageConfig  `yaml:"storage"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

type Service struct {
	config config
}

func New() (*Service, error) {
	return NewFromFile(configFile)
}

// NewFromFile reads YAML config from path and applies environment overrides on top.
func NewFromFile(path string) (*Service, error) {
	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return parse(rawYAML)
}

func parse(rawYAML []byte) (*Service, error) {
	s := &Service{}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	err = env.Parse(&s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing env")
	}

	s.config.setDefaults()
	return s, nil
}

func (c *config) setDefaults() {
	if c.App.BaseCurrencyName == "" {
		c.App.BaseCurrencyName = defaultBaseCurrency
	}
	if c.App.RatePullingDelayMinutes <= 0 {
		c.App.RatePullingDelayMinutes = defaultPullingDelayMinutes
	}
	if c.Fixer.Url == "" {
		c.Fixer.Url = defaultFixerUrl
	}
	if c.Fixer.RequestsPerMinute <= 0 {
		c.Fixer.RequestsPerMinute = defaultRequestsPerMinute
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendMemory
	}
	if c.Storage.SessionTTLMinutes <= 0 {
		c.Storage.SessionTTLMinutes = defaultSessionTTLMinutes
	}
	if c.Metrics.Address == "" {
		c.Metrics.Address = defaultMetricsAddr
	}
	if c.Tracing.Service == "" {
		c.Tracing.Service = defaultServiceName
	}
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Fixer() *FixerConfig {
	return &s.config.Fixer
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}

package config

const (
	defaultMetricsAddr = ":8080"
	defaultServiceName = "customs-bot"
)

type MetricsConfig struct {
	Address string `yaml:"addr" env:"METRICS_ADDR"`
}

func (m *MetricsConfig) Addr() string {
	return m.Address
}

type TracingConfig struct {
	Enable  bool   `yaml:"enabled" env:"TRACING_ENABLED"`
	Service string `yaml:"service-name"`
}

func (t *TracingConfig) Enabled() bool {
	return t.Enable
}

func (t *TracingConfig) ServiceName() string {
	return t.Service
}

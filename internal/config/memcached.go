package config

import "time"

const (
	BackendMemory    = "memory"
	BackendMemcached = "memcached"
	BackendRedis     = "redis"

	defaultSessionTTLMinutes = 60
)

type StorageConfig struct {
	Backend           string          `yaml:"backend" env:"STORAGE_BACKEND"`
	SessionTTLMinutes int64           `yaml:"session-ttl-minutes"`
	Memcached         MemcachedConfig `yaml:"memcached"`
	Redis             RedisConfig     `yaml:"redis"`
}

func (s *StorageConfig) SessionTTL() time.Duration {
	return time.Duration(s.SessionTTLMinutes) * time.Minute
}

type MemcachedConfig struct {
	NodeHosts []string `yaml:"hosts" env:"MEMCACHED_HOSTS" envSeparator:","`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

type RedisConfig struct {
	Address string `yaml:"addr" env:"REDIS_ADDR"`
	Pswd    string `yaml:"password" env:"REDIS_PASSWORD"`
	DB      int    `yaml:"db"`
}

func (s *RedisConfig) Addr() string {
	return s.Address
}

func (s *RedisConfig) Password() string {
	return s.Pswd
}

func (s *RedisConfig) Database() int {
	return s.DB
}

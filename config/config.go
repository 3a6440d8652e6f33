package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Provider ProviderConfig `yaml:"provider"`
	Redis    RedisConfig    `yaml:"redis"`
	Cache    CacheConfig    `yaml:"cache"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type ProviderConfig struct {
	BaseURL  string `yaml:"base_url"`
	Endpoint string `yaml:"endpoint"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CacheConfig struct {
	Key                 string `yaml:"key"`
	RefreshEverySeconds int    `yaml:"refresh_every_seconds"`
}

// RefreshInterval is the refresher tick period; zero disables both the
// refresher loop and the cached query path.
func (c CacheConfig) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshEverySeconds) * time.Second
}

func (c CacheConfig) Enabled() bool {
	return c.RefreshEverySeconds > 0
}

type KafkaConfig struct {
	Brokers       []string `yaml:"brokers"`
	SnapshotTopic string   `yaml:"snapshot_topic"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

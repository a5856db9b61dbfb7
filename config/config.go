package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Port       string        `env:"PORT" envDefault:"8080"`
	CORSOrigin string        `env:"CORS_ORIGIN" envDefault:"*"`
	CacheTTL   time.Duration `env:"CACHE_TTL" envDefault:"30s"`

	// Trade streaming is enabled only when brokers are configured.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"trades"`
}

func Load() (Config, error) {
	var cfg Config
	return cfg, env.Parse(&cfg)
}

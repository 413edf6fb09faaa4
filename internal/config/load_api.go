package config

import (
	"log/slog"
	"time"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Port              string        `koanf:"port" validate:"required"`
	StoreDriver       string        `koanf:"store_driver" validate:"required,oneof=mongo postgres memory"`
	MongoURI          string        `koanf:"mongo_uri" validate:"required_if=StoreDriver mongo"`
	MongoDB           string        `koanf:"mongo_db" validate:"required_if=StoreDriver mongo"`
	PostgresDSN       string        `koanf:"postgres_dsn" validate:"required_if=StoreDriver postgres"`
	RabbitURI         string        `koanf:"rabbit_uri"` // vazio desliga os eventos
	RabbitQueue       string        `koanf:"rabbit_queue" validate:"required"`
	LogLevelName      string        `koanf:"log_level" validate:"omitempty,oneof=debug info warn error"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

var apiEnv = map[string]string{
	"PORT":                "port",
	"STORE_DRIVER":        "store_driver",
	"MONGO_URI":           "mongo_uri",
	"MONGO_DB":            "mongo_db",
	"POSTGRES_DSN":        "postgres_dsn",
	"RABBITMQ_URL":        "rabbit_uri",
	"RABBITMQ_QUEUE":      "rabbit_queue",
	"LOG_LEVEL":           "log_level",
	"READ_HEADER_TIMEOUT": "read_header_timeout",
	"SHUTDOWN_TIMEOUT":    "shutdown_timeout",
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              "8080",
		StoreDriver:       StoreMongo,
		MongoURI:          "mongodb://localhost:27017",
		MongoDB:           "empresasdb",
		RabbitQueue:       "empresas_log",
		LogLevelName:      "info",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
	if err := load(apiEnv, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) LogLevel() slog.Level { return parseLevel(c.LogLevelName) }

func (c *Config) EventsEnabled() bool { return c.RabbitURI != "" }

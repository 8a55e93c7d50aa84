package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App        App
	Log        Log
	HTTP       HTTP
	Postgres   Postgres
	Redis      Redis
	Cache      Cache
	Percentage Percentage
	Worker     Worker
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"profit"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	JSON  bool   `env:"LOG_JSON" envDefault:"false"`
	// FieldMaxLen limits dumped request and response bodies.
	FieldMaxLen int `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	ReadHeaderTimeout    time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Worker struct {
	Enabled bool `env:"WORKER_ENABLED" envDefault:"false"`
	// RefreshCron enables the scheduler when set, e.g. "@every 30m".
	RefreshCron string `env:"WORKER_REFRESH_CRON"`
	Queue       string `env:"WORKER_QUEUE" envDefault:"default"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Model  ModelConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
	PredictRoute    string
}

type ModelConfig struct {
	Path string
}

type LoggerConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func Load() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("PREDICT_ROUTE", "/predict")
	v.SetDefault("MODEL_PATH", "models/iris_knn.json")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("LOGGER_FILE", "")
	v.SetDefault("LOGGER_MAX_SIZE_MB", 100)
	v.SetDefault("LOGGER_MAX_BACKUPS", 3)
	v.SetDefault("LOGGER_MAX_AGE_DAYS", 28)

	// Env
	v.AutomaticEnv()

	shutdownTimeout, err := time.ParseDuration(v.GetString("SERVER_SHUTDOWN_TIMEOUT"))
	if err != nil {
		shutdownTimeout = 10 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: shutdownTimeout,
			PredictRoute:    v.GetString("PREDICT_ROUTE"),
		},
		Model: ModelConfig{
			Path: v.GetString("MODEL_PATH"),
		},
		Logger: LoggerConfig{
			Level:      v.GetString("LOGGER_LEVEL"),
			Format:     v.GetString("LOGGER_FORMAT"),
			File:       v.GetString("LOGGER_FILE"),
			MaxSizeMB:  v.GetInt("LOGGER_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOGGER_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOGGER_MAX_AGE_DAYS"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Model.Path == "" {
		return fmt.Errorf("MODEL_PATH is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT %d out of range", c.Server.Port)
	}
	if !strings.HasPrefix(c.Server.PredictRoute, "/") {
		return fmt.Errorf("PREDICT_ROUTE %q must start with /", c.Server.PredictRoute)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

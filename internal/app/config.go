// Package app loads runtime configuration and assembles the POS engine
// for an embedding application.
package app

import (
	"context"
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"github.com/storebill/storebill/internal/service"
	"github.com/storebill/storebill/internal/storage/sqlite"
	"github.com/storebill/storebill/pkg/logging"
)

// Config holds runtime configuration for the POS engine.
type Config struct {
	DBPath   string `envconfig:"POS_DB_PATH" default:"./data/pos.db"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	return logging.ParseLevel(c.LogLevel)
}

// Open sets up logging, opens the SQLite bridge at the configured path and
// builds the rehydrated POS service over it. The returned close function
// releases the bridge.
func Open(ctx context.Context, cfg *Config) (*service.Service, func() error, error) {
	logging.SetupWithLevel(cfg.Level())

	bridge, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	svc := service.New(ctx, bridge)
	slog.Info("POS engine ready", "database", cfg.DBPath)
	return svc, bridge.Close, nil
}

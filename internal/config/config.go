// Package config содержит логику чтения конфигурации CRM.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Допустимые значения параметра Storage.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// ErrDatabaseURIRequired возвращается, если для хранилища PostgreSQL не задан адрес БД.
var ErrDatabaseURIRequired = errors.New("database URI is required for postgres storage")

// Config содержит параметры конфигурации CRM.
type Config struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Storage     string `env:"STORAGE"`
	LogLevel    string `env:"LOG_LEVEL"`
	Actor       string `env:"ACTOR"`

	// Args содержит команду и её аргументы, оставшиеся после флагов.
	Args []string
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Переменные окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envDatabaseURI := cfg.DatabaseURI
	envStorage := cfg.Storage
	envLogLevel := cfg.LogLevel
	envActor := cfg.Actor

	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.Storage, "s", StoragePostgres, "storage backend: postgres or memory")
	flag.StringVar(&cfg.LogLevel, "l", "info", "log level")
	flag.StringVar(&cfg.Actor, "u", "system", "user recorded as author of changes")

	flag.Parse()

	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}
	if envStorage != "" {
		cfg.Storage = envStorage
	}
	if envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}
	if envActor != "" {
		cfg.Actor = envActor
	}

	cfg.Args = flag.Args()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURI == "" {
			return ErrDatabaseURIRequired
		}
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	return nil
}

// Package config loads the terminal client's settings from the environment.
//
// An optional .env file is read first (development), then the process
// environment is parsed into Config. Unknown enum values fail Validate.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Word source backends.
const (
	SourceSODA   = "soda"
	SourceMongo  = "mongo"
	SourceSQLite = "sqlite"
	SourceFile   = "file"
)

// Config is the full runtime configuration.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`

	Source    string `env:"WORDLE_SOURCE" envDefault:"soda"`
	Selection string `env:"WORDLE_SELECTION" envDefault:"random"`
	DailySalt string `env:"WORDLE_DAILY_SALT" envDefault:"local_dev_salt"`
	Scoring   string `env:"WORDLE_SCORING" envDefault:"standard"`

	FetchTimeout    time.Duration `env:"WORDLE_FETCH_TIMEOUT" envDefault:"10s"`
	FetchRetries    uint          `env:"WORDLE_FETCH_RETRIES" envDefault:"1"`
	FetchRetryDelay time.Duration `env:"WORDLE_FETCH_RETRY_DELAY" envDefault:"500ms"`

	SODA   SODA   `envPrefix:"SODA_"`
	Mongo  Mongo  `envPrefix:"MONGO_"`
	SQLite SQLite `envPrefix:"SQLITE_"`
	File   File   `envPrefix:"WORDS_"`
}

// SODA points at an ORDS SODA REST endpoint, e.g.
// https://host/ords/admin/soda/latest.
type SODA struct {
	BaseURL    string `env:"BASE_URL"`
	Collection string `env:"COLLECTION" envDefault:"Wordle"`
	User       string `env:"USER"`
	Password   string `env:"PASSWORD"`
}

type Mongo struct {
	URI        string `env:"URI"`
	Database   string `env:"DATABASE" envDefault:"Wordle"`
	Collection string `env:"COLLECTION" envDefault:"words"`
}

type SQLite struct {
	Path  string `env:"PATH" envDefault:"./data/wordle.db"`
	Table string `env:"TABLE" envDefault:"documents"`
}

type File struct {
	Path string `env:"FILE"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Source = strings.ToLower(strings.TrimSpace(cfg.Source))
	return cfg, cfg.Validate()
}

// Validate checks the selected backend has what it needs.
func (c Config) Validate() error {
	if c.FetchTimeout <= 0 {
		return errors.New("WORDLE_FETCH_TIMEOUT must be positive")
	}
	switch c.Source {
	case SourceSODA:
		if c.SODA.BaseURL == "" {
			return errors.New("SODA_BASE_URL is required for the soda source")
		}
	case SourceMongo:
		if c.Mongo.URI == "" {
			return errors.New("MONGO_URI is required for the mongo source")
		}
	case SourceSQLite:
		if c.SQLite.Path == "" {
			return errors.New("SQLITE_PATH is required for the sqlite source")
		}
	case SourceFile:
		if c.File.Path == "" {
			return errors.New("WORDS_FILE is required for the file source")
		}
	default:
		return fmt.Errorf("unknown WORDLE_SOURCE %q", c.Source)
	}
	return nil
}

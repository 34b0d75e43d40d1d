// Package config reads server settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"playstore/shared"

	"github.com/asaskevich/govalidator"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DataFile    string
	DatabaseURL string
	CORSOrigins []string
	MetricsAddr string
	LogLevel    string
	LoadTimeout time.Duration
}

const (
	defaultPort        = "8000"
	defaultLogLevel    = "info"
	defaultLoadTimeout = 10 * time.Second
)

// Load reads envFile (if it exists) into the process environment and builds
// a Config from it. A missing file is fine, an unreadable one is not.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv for lookups.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:        getenv("PORT"),
		DataFile:    getenv("DATA_FILE"),
		DatabaseURL: getenv("DATABASE_URL"),
		MetricsAddr: getenv("METRICS_ADDR"),
		LogLevel:    strings.ToLower(getenv("LOG_LEVEL")),
		LoadTimeout: defaultLoadTimeout,
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if !govalidator.IsPort(cfg.Port) {
		return nil, fmt.Errorf("PORT %q is not a valid port", cfg.Port)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if !govalidator.IsIn(cfg.LogLevel, "debug", "info", "warn", "error") {
		return nil, fmt.Errorf("LOG_LEVEL %q must be debug, info, warn or error", cfg.LogLevel)
	}

	cfg.CORSOrigins = shared.NormalizeSlice(strings.Split(getenv("CORS_ORIGINS"), ","))
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	if v := getenv("LOAD_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("LOAD_TIMEOUT %q is not a positive duration", v)
		}
		cfg.LoadTimeout = d
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

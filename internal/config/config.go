// Package config loads service settings from the environment. A .env file in
// the working directory is read first; variables already set in the process
// environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

const (
	envAddr            = "COOLCALC_ADDR"
	envStorage         = "COOLCALC_STORAGE"
	envStoragePath     = "COOLCALC_STORAGE_PATH"
	envTelemetry       = "COOLCALC_TELEMETRY"
	envShutdownTimeout = "COOLCALC_SHUTDOWN_TIMEOUT"
)

var defaultStoragePaths = map[string]string{
	BackendFile:   "expressions.log",
	BackendSQLite: "expressions.db",
}

type Config struct {
	Addr            string
	Storage         Storage
	Telemetry       bool
	ShutdownTimeout time.Duration
}

type Storage struct {
	Backend string
	Path    string
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:            ":8080",
		Telemetry:       true,
		ShutdownTimeout: 5 * time.Second,
		Storage: Storage{
			Backend: BackendFile,
		},
	}

	if v := getenv(envAddr); v != "" {
		cfg.Addr = v
	}

	if v := getenv(envStorage); v != "" {
		if _, ok := defaultStoragePaths[v]; !ok {
			return Config{}, fmt.Errorf("%s: unknown backend %q", envStorage, v)
		}
		cfg.Storage.Backend = v
	}

	cfg.Storage.Path = getenv(envStoragePath)
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaultStoragePaths[cfg.Storage.Backend]
	}

	if v := getenv(envTelemetry); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envTelemetry, err)
		}
		cfg.Telemetry = enabled
	}

	if v := getenv(envShutdownTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envShutdownTimeout, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("%s: must be positive, got %s", envShutdownTimeout, d)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

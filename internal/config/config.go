// Package config loads the storefront configuration from an optional
// YAML file, with environment variables taking precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPPort string `yaml:"http_port"`

	// Storage selects the persistence backend: "memory", "file" or
	// "redis".
	Storage    string `yaml:"storage"`
	StorageDir string `yaml:"storage_dir"`
	RedisAddr  string `yaml:"redis_addr"`

	// Catalog selects the product source: "memory" or "sqlite".
	Catalog        string `yaml:"catalog"`
	CatalogDBPath  string `yaml:"catalog_db_path"`
	MigrationsPath string `yaml:"migrations_path"`
}

func defaults() Config {
	return Config{
		HTTPPort:       "8080",
		Storage:        "file",
		StorageDir:     "./data",
		RedisAddr:      "localhost:6379",
		Catalog:        "memory",
		CatalogDBPath:  "./data/catalog.db",
		MigrationsPath: "./internal/catalog/migrations",
	}
}

// Load reads path (when it exists) over the defaults, then applies env
// overrides. A missing file is fine; a malformed one is not.
func Load(path string) (Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.HTTPPort = getEnv("HTTP_PORT", cfg.HTTPPort)
	cfg.Storage = getEnv("STORAGE_BACKEND", cfg.Storage)
	cfg.StorageDir = getEnv("STORAGE_DIR", cfg.StorageDir)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.Catalog = getEnv("CATALOG_BACKEND", cfg.Catalog)
	cfg.CatalogDBPath = getEnv("CATALOG_DB_PATH", cfg.CatalogDBPath)
	cfg.MigrationsPath = getEnv("MIGRATIONS_PATH", cfg.MigrationsPath)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage {
	case "memory", "file", "redis":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}
	switch c.Catalog {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("unknown catalog backend %q", c.Catalog)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Package config loads server configuration from a YAML file with
// environment variable overrides. Secrets (object storage credentials) are
// expected from the environment in deployed setups; the file form exists for
// local development.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all intake server configuration.
type Config struct {
	// Server settings
	Server ServerConfig `yaml:"server"`

	// Submission storage
	Database DatabaseConfig `yaml:"database"`

	// Object storage for photo uploads (Cloudflare R2, S3-compatible)
	Storage StorageConfig `yaml:"storage"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig configures the SQLite submission store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// StorageConfig configures the R2 bucket used for upload presigning. All
// five values must be set for uploads to work; otherwise the upload
// endpoints answer 503.
type StorageConfig struct {
	AccountID       string `yaml:"account_id"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Bucket          string `yaml:"bucket"`
	PublicBaseURL   string `yaml:"public_base_url"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Configured reports whether every storage credential is present.
func (s StorageConfig) Configured() bool {
	return s.AccountID != "" && s.AccessKeyID != "" && s.SecretAccessKey != "" &&
		s.Bucket != "" && s.PublicBaseURL != ""
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{Path: "intake.db"},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Load loads configuration from a YAML file. A missing file is not an
// error: defaults plus environment overrides apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides. Environment
// always wins over the file, matching how the hosting platform injects
// secrets.
func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("INTAKE_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if path := os.Getenv("INTAKE_DB_PATH"); path != "" {
		c.Database.Path = path
	}
	if level := os.Getenv("INTAKE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	if v := os.Getenv("R2_ACCOUNT_ID"); v != "" {
		c.Storage.AccountID = v
	}
	if v := os.Getenv("R2_ACCESS_KEY_ID"); v != "" {
		c.Storage.AccessKeyID = v
	}
	if v := os.Getenv("R2_SECRET_ACCESS_KEY"); v != "" {
		c.Storage.SecretAccessKey = v
	}
	if v := os.Getenv("R2_BUCKET_NAME"); v != "" {
		c.Storage.Bucket = v
	}
	if v := os.Getenv("R2_PUBLIC_URL"); v != "" {
		c.Storage.PublicBaseURL = v
	}
}

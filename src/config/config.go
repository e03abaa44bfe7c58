// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads optional exporter settings from a JSON or YAML file,
// applying defaults for any missing values. Command-line flags take
// precedence over file values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/tls-ca-exporter/src/internal/x509/export"
)

// EnvConfigFile names the environment variable consulted for the config file
// path when none is given explicitly.
const EnvConfigFile = "TLS_CA_EXPORTER_CONFIG_FILE"

// Defaults applied when no config file is present or a value is unset.
const (
	DefaultTimeoutSeconds = 10
	DefaultOutputDir      = "certificates"
	DefaultLeafFileName   = "leaf_certificate.pem"
	DefaultCAFilePattern  = "ca_certificate_%d.pem"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config holds the exporter's file-configurable settings.
//
// The configuration can be loaded from a JSON or YAML file specified by the
// TLS_CA_EXPORTER_CONFIG_FILE environment variable or the --config flag,
// with defaults applied for any missing values. Supported file extensions:
// .json, .yaml, .yml
type Config struct {
	// Defaults: Default settings for one export run
	Defaults struct {
		// TimeoutSeconds: Bound for the TCP connect and TLS handshake
		TimeoutSeconds int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
		// OutputDir: Directory receiving certificate files and the guide
		OutputDir string `json:"outputDir" yaml:"outputDir"`
		// LeafFileName: Name of the leaf certificate artifact
		LeafFileName string `json:"leafFileName" yaml:"leafFileName"`
		// CAFilePattern: Printf pattern for CA artifacts, with one %d
		// verb receiving the zero-based CA ordinal
		CAFilePattern string `json:"caFilePattern" yaml:"caFilePattern"`
	} `json:"defaults" yaml:"defaults"`
}

// Default returns a configuration populated with the built-in defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.Defaults.TimeoutSeconds = DefaultTimeoutSeconds
	cfg.Defaults.OutputDir = DefaultOutputDir
	cfg.Defaults.LeafFileName = DefaultLeafFileName
	cfg.Defaults.CAFilePattern = DefaultCAFilePattern
	return cfg
}

// detectConfigFormat determines the configuration file format based on file
// extension, using case-insensitive matching for cross-platform
// compatibility.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// Load reads the configuration from path, falling back to the
// TLS_CA_EXPORTER_CONFIG_FILE environment variable when path is empty, and
// to the built-in defaults when neither names a file. Values left unset in
// the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch detectConfigFormat(path) {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse YAML %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse JSON %s: %w", path, err)
		}
	}

	if cfg.Defaults.TimeoutSeconds <= 0 {
		cfg.Defaults.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.Defaults.OutputDir == "" {
		cfg.Defaults.OutputDir = DefaultOutputDir
	}
	if cfg.Defaults.LeafFileName == "" {
		cfg.Defaults.LeafFileName = DefaultLeafFileName
	}
	if cfg.Defaults.CAFilePattern == "" {
		cfg.Defaults.CAFilePattern = DefaultCAFilePattern
	}
	if !strings.Contains(cfg.Defaults.CAFilePattern, "%d") {
		return nil, fmt.Errorf("config: caFilePattern %q must contain a %%d ordinal", cfg.Defaults.CAFilePattern)
	}

	return cfg, nil
}

// Timeout returns the configured timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Defaults.TimeoutSeconds) * time.Second
}

// Naming returns the configured output filenames for classification.
func (c *Config) Naming() export.FileNaming {
	return export.FileNaming{
		Leaf:      c.Defaults.LeafFileName,
		CAPattern: c.Defaults.CAFilePattern,
	}
}

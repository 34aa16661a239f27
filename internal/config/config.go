// Package config loads the optional blogbuilder.yaml file. Every field has a
// default, so a build with no configuration file reads ./posts and writes
// ./public.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = "blogbuilder.yaml"

// Config represents the application configuration.
type Config struct {
	InputDir  string      `yaml:"input_dir"`
	OutputDir string      `yaml:"output_dir"`
	Extension string      `yaml:"extension"`
	Site      SiteConfig  `yaml:"site"`
	Index     IndexConfig `yaml:"index"`
	LogLevel  LogLevel    `yaml:"log_level"`
}

// SiteConfig holds values shared by every generated page.
type SiteConfig struct {
	Title      string `yaml:"title"`
	Lang       string `yaml:"lang"`
	Stylesheet string `yaml:"stylesheet"`
}

// IndexConfig controls how posts are presented on the index page.
type IndexConfig struct {
	Mode IndexMode `yaml:"mode"`
}

// Load reads the configuration at path. A missing file is not an error and
// yields the defaults; a file that exists but cannot be parsed or fails
// validation is.
func Load(path string) (*Config, error) {
	// #nosec G304 -- path is the operator-supplied configuration file.
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return Parse(data, path)
}

// Parse decodes YAML configuration, applies defaults and validates the result.
// source is used only in error context.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to parse config file").
			Fatal().
			WithContext("path", source).
			Build()
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// Init writes an example configuration file holding the defaults.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal example config").Build()
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return nil
}

// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the settings file when no path is given.
const EnvironmentVariable = "INSTALLER_CONFIG"

// DescriptorExtension is the file extension of branding descriptors.
const DescriptorExtension = ".desc"

// Config is the installer settings file.
type Config struct {
	// Branding is the component name of the branding to use. Required.
	Branding string `yaml:"branding"`

	// BrandingSearchPaths are the directories holding branding
	// components, searched in order.
	// Default: /usr/share/installer/branding, /etc/installer/branding
	BrandingSearchPaths []string `yaml:"branding_search_paths"`

	// LogLevel is one of debug, info, warn, error.
	// Default: info
	LogLevel string `yaml:"log_level"`

	// ImageCacheSize is how many scaled images the image loader keeps.
	// Zero disables the cache.
	// Default: 64
	ImageCacheSize int `yaml:"image_cache_size"`
}

// Default returns the default configuration. Branding has no default.
func Default() *Config {
	return &Config{
		BrandingSearchPaths: []string{
			"/usr/share/installer/branding",
			"/etc/installer/branding",
		},
		LogLevel:       "info",
		ImageCacheSize: 64,
	}
}

// Load loads configuration from the file named by INSTALLER_CONFIG.
// It fails when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your installer settings file, or use --config", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path over [Default] and expands
// variables in the search paths.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	cfg.expandVariables()
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in
// search paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	for index, path := range c.BrandingSearchPaths {
		c.BrandingSearchPaths[index] = expandVars(path, vars)
	}
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Provided vars first, then the environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Branding == "" {
		errs = append(errs, fmt.Errorf("branding is required"))
	} else if strings.ContainsAny(c.Branding, `/\`) || c.Branding == "." || c.Branding == ".." {
		errs = append(errs, fmt.Errorf("branding must be a component name, not a path: %q", c.Branding))
	}

	if len(c.BrandingSearchPaths) == 0 {
		errs = append(errs, fmt.Errorf("branding_search_paths must name at least one directory"))
	}
	for index, path := range c.BrandingSearchPaths {
		if path == "" {
			errs = append(errs, fmt.Errorf("branding_search_paths[%d] is empty", index))
		}
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	if c.ImageCacheSize < 0 {
		errs = append(errs, fmt.Errorf("image_cache_size must not be negative, got %d", c.ImageCacheSize))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Level returns LogLevel as a slog level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log_level must be one of: debug, info, warn, error; got %q", c.LogLevel)
	}
}

// BrandingDescriptorPath returns the path of the first existing
// <search path>/<branding>/<branding>.desc. The returned error wraps
// fs.ErrNotExist when no search path holds the component.
func (c *Config) BrandingDescriptorPath() (string, error) {
	if c.Branding == "" {
		return "", fmt.Errorf("branding is required")
	}
	for _, directory := range c.BrandingSearchPaths {
		candidate := filepath.Join(directory, c.Branding, c.Branding+DescriptorExtension)
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("branding component %q not found in %s: %w",
		c.Branding, strings.Join(c.BrandingSearchPaths, ", "), fs.ErrNotExist)
}

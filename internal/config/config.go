// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads cricketstats settings from defaults, YAML files,
// CRICKETSTATS_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the persisted configuration.
type Config struct {
	Database Database `mapstructure:"database" yaml:"database"`
	Language string   `mapstructure:"language" yaml:"language"`
}

// Database selects and tunes the backing store.
type Database struct {
	Type         string `mapstructure:"type" yaml:"type"`
	Dsn          string `mapstructure:"dsn" yaml:"dsn"`
	AtomicUpsert bool   `mapstructure:"atomic_upsert" yaml:"atomic_upsert"`
}

// Defaults are applied before any file, env var or flag.
func Defaults() map[string]any {
	return map[string]any{
		"database.type":          "sqlite",
		"database.dsn":           "./players.db",
		"database.atomic_upsert": false,
		"language":               "en",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "cricketstats")
		default: // Linux, macOS, etc.
			configDir = "/etc/cricketstats"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "cricketstats")
	}

	return filepath.Join(configDir, "cricketstats.yaml"), nil
}

// LoadConfig builds a T from, in increasing precedence: defaults, the first
// cricketstats.yaml found in the user, system and current directories (or
// the explicit file when configFile is non-nil), CRICKETSTATS_* environment
// variables and the flags of cmd. A missing config file is returned as a
// viper.ConfigFileNotFoundError alongside the otherwise complete result.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("cricketstats")
	v.SetConfigType("yaml")
	if configFile != nil {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, but other errors are fatal.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, err
		}
		notFound = err
	}

	v.SetEnvPrefix("cricketstats")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile writes c as YAML to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

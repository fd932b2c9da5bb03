// Package config handles configuration loading and validation for astrosort.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"astrosort/internal/catalog"
	"astrosort/internal/namer"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	// FileNotFound indicates the configuration file does not exist.
	FileNotFound ConfigErrorType = "FILE_NOT_FOUND"
	// InvalidFormat indicates the file could not be parsed or decoded.
	InvalidFormat ConfigErrorType = "INVALID_FORMAT"
	// ValidationError indicates the configuration content is unusable.
	ValidationError ConfigErrorType = "VALIDATION_ERROR"
)

// ConfigError represents an error that occurred during configuration loading.
type ConfigError struct {
	Type    ConfigErrorType
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("configuration file not found: %s", e.Path)
	case InvalidFormat:
		return fmt.Sprintf("invalid configuration file: %s", e.Message)
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// WatchSettings tunes watch mode.
type WatchSettings struct {
	DebounceSeconds int `mapstructure:"debounceSeconds"`
}

// Configuration holds all settings for astrosort.
type Configuration struct {
	// RootDirectory is the flat directory whose immediate children are the
	// collection folders.
	RootDirectory string `mapstructure:"rootDirectory"`
	// Lookup maps normalized catalog designations to operator-chosen
	// display names. An entry always wins over the naming heuristic.
	Lookup map[string]string `mapstructure:"lookup"`
	Watch  WatchSettings     `mapstructure:"watch"`
}

// Validate checks that the configuration is usable before a run starts.
func (c *Configuration) Validate() error {
	if c.RootDirectory == "" {
		return &ConfigError{
			Type:    ValidationError,
			Message: "rootDirectory must be set",
		}
	}
	for key := range c.Lookup {
		id, ok := catalog.Designation(key)
		if !ok || string(id) != key {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("lookup key %q is not a normalized catalog designation", key),
			}
		}
		if c.Lookup[key] == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("lookup entry for %q is empty", key),
			}
		}
	}
	if c.Watch.DebounceSeconds < 0 {
		return &ConfigError{
			Type:    ValidationError,
			Message: "watch.debounceSeconds cannot be negative",
		}
	}
	return nil
}

// LookupTable converts the raw lookup map into the namer's table form.
// The returned table is a fresh copy; the engine treats it as immutable.
func (c *Configuration) LookupTable() namer.LookupTable {
	table := make(namer.LookupTable, len(c.Lookup))
	for key, name := range c.Lookup {
		table[catalog.ID(key)] = name
	}
	return table
}

// Load reads and validates a configuration file from the given path.
// YAML and JSON are accepted; the format is inferred from the extension.
func Load(path string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("watch.debounceSeconds", 2)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{Type: FileNotFound, Path: path}
		}
		return nil, &ConfigError{Type: InvalidFormat, Path: path, Message: err.Error()}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{Type: InvalidFormat, Path: path, Message: err.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

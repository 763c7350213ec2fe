package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/321BadgerCode/gibberish-generator/pkg/markov"
	"github.com/natefinch/atomic"
)

// Config holds the settings that are not given on the command line.
type Config struct {
	LogLevel       string `json:"log_level"`
	WordCount      int    `json:"word_count"`
	TokenLimit     int    `json:"token_limit"`
	LineBoundaries bool   `json:"line_boundaries"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		WordCount:      markov.DefaultMaxWords,
		TokenLimit:     markov.DefaultTokenLimit,
		LineBoundaries: false,
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Warn instead of failing, as the run can proceed with defaults.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		// For other errors (e.g., permission denied), return the error.
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

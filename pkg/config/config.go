/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rayokota/hentitydb-sub001/pkg/codec"
	"github.com/rayokota/hentitydb-sub001/pkg/logging"
)

// Config represents the kcodec configuration
type Config struct {
	DataDir string  `yaml:"data_dir"`
	Sync    bool    `yaml:"sync"`
	Logging Logging `yaml:"logging"`
	Codec   Codec   `yaml:"codec"`
	Server  Server  `yaml:"server"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// Codec contains encoder tuning
type Codec struct {
	SaltBuckets       int `yaml:"salt_buckets"`
	InitialBufferSize int `yaml:"initial_buffer_size"`
}

// Server contains settings for the HTTP service
type Server struct {
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir: "./data",
		Logging: Logging{
			Level: "info",
		},
		Codec: Codec{
			SaltBuckets:       codec.DefaultSaltBuckets,
			InitialBufferSize: codec.DefaultInitialBufferSize,
		},
		Server: Server{
			Port: 9200,
		},
	}
}

// Validate checks every field and returns the first problem found
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Codec.SaltBuckets < 1 || c.Codec.SaltBuckets > codec.MaxSaltBuckets {
		return fmt.Errorf("codec.salt_buckets must be between 1 and %d, got %d", codec.MaxSaltBuckets, c.Codec.SaltBuckets)
	}
	if c.Codec.InitialBufferSize < 1 {
		return fmt.Errorf("codec.initial_buffer_size must be positive, got %d", c.Codec.InitialBufferSize)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	return nil
}

// LoadConfig loads configuration from the specified path. Fields missing
// from the file keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// BootstrapConfig writes a default configuration for dataDir
func BootstrapConfig(configPath string, dataDir string) (*Config, error) {
	config := DefaultConfig()
	if dataDir != "" {
		config.DataDir = dataDir
	}

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./kcodec.yaml"
	}

	// ~/.config/kcodec/config.yaml
	configDir := filepath.Join(homeDir, ".config", "kcodec")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}

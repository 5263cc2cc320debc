package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	AWSProfile      string `yaml:"aws_profile,omitempty"`
	AWSRegion       string `yaml:"aws_region,omitempty"`
	AccessKeyID     string `yaml:"aws_access_key_id,omitempty"`
	SecretAccessKey string `yaml:"aws_secret_access_key,omitempty"`
}

// GetConfigDir returns the config directory path (~/.asgcfg)
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".asgcfg"
	}
	return filepath.Join(home, ".asgcfg")
}

// GetConfigPath returns the config file path (~/.asgcfg/config.yaml)
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// LoadConfig loads the configuration from ~/.asgcfg/config.yaml
func LoadConfig() (*Config, error) {
	data, err := os.ReadFile(GetConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves the configuration to ~/.asgcfg/config.yaml
func SaveConfig(cfg *Config) error {
	// Create config directory if it doesn't exist
	if err := os.MkdirAll(GetConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(GetConfigPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetDefaults updates the saved default profile and region. Empty values
// leave the existing setting in place.
func SetDefaults(profile, region string) error {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = &Config{}
	}

	if profile != "" {
		cfg.AWSProfile = profile
	}
	if region != "" {
		cfg.AWSRegion = region
	}
	return SaveConfig(cfg)
}

// GetSavedProfile returns the saved AWS profile from config
func GetSavedProfile() string {
	cfg, err := LoadConfig()
	if err != nil {
		return ""
	}
	return cfg.AWSProfile
}

// GetSavedRegion returns the saved AWS region from config
func GetSavedRegion() string {
	cfg, err := LoadConfig()
	if err != nil {
		return ""
	}
	return cfg.AWSRegion
}

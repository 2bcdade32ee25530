// Package config loads project-level configuration for licenseguard from
// .licenseguard.yaml and LICENSEGUARD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for licenseguard
type Config struct {
	Scan ScanConfig `mapstructure:"scan"`
}

// ScanConfig holds scan defaults that flags can override
type ScanConfig struct {
	PolicyPath   string `mapstructure:"policy_path"`
	OutputFormat string `mapstructure:"output_format"`
	FailOn       string `mapstructure:"fail_on"`
}

var defaultConfig = Config{
	Scan: ScanConfig{
		PolicyPath:   "",
		OutputFormat: "text",
		FailOn:       "never",
	},
}

// Load reads configuration for the project at target. A missing config file
// is not an error; defaults apply.
func Load(target string) (*Config, error) {
	v := viper.New()

	v.SetDefault("scan.policy_path", defaultConfig.Scan.PolicyPath)
	v.SetDefault("scan.output_format", defaultConfig.Scan.OutputFormat)
	v.SetDefault("scan.fail_on", defaultConfig.Scan.FailOn)

	v.SetConfigName(".licenseguard")
	v.SetConfigType("yaml")
	if target != "" {
		v.AddConfigPath(target)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("LICENSEGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

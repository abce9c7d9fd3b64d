package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mdickopp/styled-output/internal/streaminfo"
)

// Settings represents user-level configuration stored in config.yaml.
type Settings struct {
	// Color selects the color mode per stream. The --color flag wins over
	// both.
	Color ColorSettings `yaml:"color" mapstructure:"color"`

	// Logging configures file-based logging.
	// File logging is ENABLED by default - users can disable via config.yaml.
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// ColorSettings holds the configured color mode of each output stream.
type ColorSettings struct {
	Stdout streaminfo.ColorMode `yaml:"stdout" mapstructure:"stdout"`
	Stderr streaminfo.ColorMode `yaml:"stderr" mapstructure:"stderr"`
}

// LoggingConfig configures file-based logging.
type LoggingConfig struct {
	// FileEnabled enables logging to file (default: true)
	FileEnabled *bool `yaml:"file_enabled" mapstructure:"file_enabled"`
	// MaxSizeMB is the max size in MB before rotation (default: 10)
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	// MaxAgeDays is max days to retain old logs (default: 7)
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days"`
	// MaxBackups is max number of old log files to keep (default: 3)
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to true if not explicitly set.
func (c LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

// YAML renders the settings as a config file would contain them.
func (s Settings) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to render settings: %w", err)
	}
	return out, nil
}

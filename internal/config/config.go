// Package config loads user settings for styled from
// $XDG_CONFIG_HOME/styled-output/config.yaml, with STYLED_* environment
// variables taking precedence over the file and built-in defaults filling
// in the rest.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. STYLED_COLOR_STDOUT.
const EnvPrefix = "STYLED"

// Config is the loaded configuration.
type Config struct {
	v        *viper.Viper
	file     string
	settings Settings
}

func newViperConfig() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads the config file at its default location. A missing file is
// not an error; defaults and environment overrides still apply.
func Load() (*Config, error) {
	path, err := FilePath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the config file at path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	v := newViperConfig()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	return newConfig(v, path)
}

// ReadFromString creates a config from YAML content. Environment overrides
// still apply.
func ReadFromString(str string) (*Config, error) {
	v := newViperConfig()
	if err := v.ReadConfig(bytes.NewBufferString(str)); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return newConfig(v, "")
}

// NewBlankConfig returns a config holding only defaults and environment
// overrides. It panics if an environment override is invalid.
func NewBlankConfig() *Config {
	cfg, err := newConfig(newViperConfig(), "")
	if err != nil {
		panic(err)
	}
	return cfg
}

func newConfig(v *viper.Viper, file string) (*Config, error) {
	var s Settings
	if err := v.Unmarshal(&s, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &Config{v: v, file: file, settings: s}, nil
}

// Settings returns the decoded settings.
func (c *Config) Settings() Settings {
	return c.settings
}

// File returns the path the config was loaded from, or "" when it was not
// loaded from a file.
func (c *Config) File() string {
	return c.file
}

// FileUsed reports whether a config file was actually read.
func (c *Config) FileUsed() bool {
	return c.v.ConfigFileUsed() != ""
}

// Get returns the raw value at a dotted key path such as "color.stdout".
func (c *Config) Get(key string) (any, error) {
	if !c.v.IsSet(key) {
		return nil, &KeyNotFoundError{Key: key}
	}
	return c.v.Get(key), nil
}

// KeyNotFoundError is returned by Get for unknown keys.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("configuration key %q not found", e.Key)
}

package config

import "github.com/spf13/viper"

// Default values for settings. Color modes are strings so they decode
// through the same path as file and environment values.
const (
	DefaultColorMode  = "auto"
	DefaultMaxSizeMB  = 10
	DefaultMaxAgeDays = 7
	DefaultMaxBackups = 3
)

// SetDefaults registers defaults for every key. Keys must be known to viper
// for AutomaticEnv to reach them during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("color.stdout", DefaultColorMode)
	v.SetDefault("color.stderr", DefaultColorMode)
	v.SetDefault("logging.file_enabled", true)
	v.SetDefault("logging.max_size_mb", DefaultMaxSizeMB)
	v.SetDefault("logging.max_age_days", DefaultMaxAgeDays)
	v.SetDefault("logging.max_backups", DefaultMaxBackups)
}

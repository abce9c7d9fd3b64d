package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is the directory name under the XDG base directories.
	AppName = "styled-output"
	// FileName is the config file name.
	FileName = "config.yaml"
	// LogsSubdir holds log files under the state directory.
	LogsSubdir = "logs"

	configDirEnv = EnvPrefix + "_CONFIG_DIR"
	stateDirEnv  = EnvPrefix + "_STATE_DIR"
)

// ConfigDir returns the config directory. STYLED_CONFIG_DIR overrides the
// XDG location.
func ConfigDir() string {
	if d := os.Getenv(configDirEnv); d != "" {
		return d
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// StateDir returns the state directory. STYLED_STATE_DIR overrides the XDG
// location.
func StateDir() string {
	if d := os.Getenv(stateDirEnv); d != "" {
		return d
	}
	return filepath.Join(xdg.StateHome, AppName)
}

// FilePath returns the path of the config file. The file need not exist.
func FilePath() (string, error) {
	dir := ConfigDir()
	if dir == "" {
		return "", fmt.Errorf("cannot determine config directory")
	}
	return filepath.Join(dir, FileName), nil
}

// LogsDir returns the directory for log files.
func LogsDir() string {
	return filepath.Join(StateDir(), LogsSubdir)
}

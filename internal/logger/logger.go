// Package logger holds the process-wide zerolog logger used by the styled
// command. Library packages take a small Logger interface instead of
// importing this package.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the name of the log file inside the logs directory.
const LogFileName = "styled.log"

var (
	// Log is the global logger instance
	Log = zerolog.Nop()

	// fileWriter is the file output for logging (with rotation)
	fileWriter *lumberjack.Logger

	// logContext holds the running command for log entries (optional, may be empty)
	logContext   logContextData
	logContextMu sync.RWMutex
)

type logContextData struct {
	Command string
}

// SetContext sets the command name recorded on all subsequent log entries.
// Pass an empty string to clear. Thread-safe.
func SetContext(command string) {
	logContextMu.Lock()
	defer logContextMu.Unlock()
	logContext = logContextData{Command: command}
}

// ClearContext clears the command context.
func ClearContext() {
	SetContext("")
}

func getContext() logContextData {
	logContextMu.RLock()
	defer logContextMu.RUnlock()
	return logContext
}

func addContext(event *zerolog.Event) *zerolog.Event {
	ctx := getContext()
	if ctx.Command != "" {
		event = event.Str("command", ctx.Command)
	}
	return event
}

// LoggingConfig holds configuration for file-based logging.
// It mirrors config.LoggingConfig to keep this package free of config imports.
type LoggingConfig struct {
	FileEnabled *bool
	MaxSizeMB   int
	MaxAgeDays  int
	MaxBackups  int
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to true if not explicitly set.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 10 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// Console selects human-readable log output. Color should come from the
// stream's own color decision so NO_COLOR and --color apply to logs too.
type Console struct {
	Out   io.Writer
	Color bool
}

// Init resets the global logger to a nop logger. It is the state before
// InitWithFile runs and the fallback when file logging cannot be set up.
func Init() {
	Log = zerolog.Nop()
}

// InitWithFile initializes the logger with optional file output and an
// optional console. File output is JSON with rotation; the console gets
// zerolog's pretty format. With neither, the logger is a nop.
func InitWithFile(debug bool, logsDir string, cfg *LoggingConfig, console *Console) error {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var writers []io.Writer
	if console != nil && console.Out != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        console.Out,
			TimeFormat: time.RFC3339,
			NoColor:    !console.Color,
		})
	}

	if logsDir != "" && cfg != nil && cfg.IsFileEnabled() {
		if err := os.MkdirAll(logsDir, 0o755); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
		fileWriter = &lumberjack.Logger{
			Filename:   filepath.Join(logsDir, LogFileName),
			MaxSize:    cfg.GetMaxSizeMB(),
			MaxAge:     cfg.GetMaxAgeDays(),
			MaxBackups: cfg.GetMaxBackups(),
			LocalTime:  true,
		}
		writers = append(writers, fileWriter)
	}

	if len(writers) == 0 {
		Init()
		return nil
	}

	Log = zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}

// CloseFileWriter closes the file writer if it exists.
// Call this on program shutdown for clean log file closure.
func CloseFileWriter() error {
	if fileWriter != nil {
		err := fileWriter.Close()
		fileWriter = nil
		return err
	}
	return nil
}

// GetLogFilePath returns the path to the current log file, or empty string if file logging is disabled.
func GetLogFilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return addContext(Log.Debug())
}

// Info logs an info message.
func Info() *zerolog.Event {
	return addContext(Log.Info())
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return addContext(Log.Warn())
}

// Error logs an error message.
func Error() *zerolog.Event {
	return addContext(Log.Error())
}

// WithField returns a logger with an additional field
func WithField(key string, value any) zerolog.Logger {
	return Log.With().Interface(key, value).Logger()
}

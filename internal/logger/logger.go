// Package logger is a small leveled logger. The terminal belongs to the TUI,
// so output is discarded unless a log file is configured through
// ONBOARDR_LOG_FILE or [Configure].
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Environment variables read by [New].
const (
	EnvLevel = "ONBOARDR_LOG_LEVEL"
	EnvFile  = "ONBOARDR_LOG_FILE"
)

// Level represents a log level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of a log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a log level string. "warning" is accepted for warn.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}

// sink is the state shared by a logger and its component loggers.
type sink struct {
	mu     sync.Mutex
	level  Level
	logger *log.Logger
	file   *os.File
}

// Logger writes leveled lines, optionally tagged with a component name.
type Logger struct {
	sink      *sink
	component string
}

// Default is the process-wide logger used by the package-level functions.
var Default = New()

// New creates a logger from ONBOARDR_LOG_LEVEL and ONBOARDR_LOG_FILE.
// Invalid values are ignored.
func New() *Logger {
	l := &Logger{sink: &sink{
		level:  LevelInfo,
		logger: log.New(io.Discard, "", log.LstdFlags),
	}}

	if levelStr := os.Getenv(EnvLevel); levelStr != "" {
		if level, err := ParseLevel(levelStr); err == nil {
			l.sink.level = level
		}
	}

	if logFile := os.Getenv(EnvFile); logFile != "" {
		_ = l.openFile(logFile)
	}

	return l
}

// Configure applies a level and log file, typically from the loaded
// config. An empty level or file leaves the current setting untouched.
func (l *Logger) Configure(level, file string) error {
	if level != "" {
		lvl, err := ParseLevel(level)
		if err != nil {
			return err
		}
		l.SetLevel(lvl)
	}
	if file != "" {
		if err := l.openFile(file); err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
	}
	return nil
}

func (l *Logger) openFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if l.sink.file != nil {
		_ = l.sink.file.Close()
	}
	l.sink.file = f
	l.sink.logger.SetOutput(f)
	return nil
}

// Component returns a logger that shares l's output and level and prefixes
// each message with name.
func (l *Logger) Component(name string) *Logger {
	return &Logger{sink: l.sink, component: name}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if l.sink.file == nil {
		return nil
	}
	err := l.sink.file.Close()
	l.sink.file = nil
	l.sink.logger.SetOutput(io.Discard)
	return err
}

// SetLevel sets the log level
func (l *Logger) SetLevel(level Level) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.level = level
}

// Level returns the current log level.
func (l *Logger) Level() Level {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.level
}

// SetOutput sets the output writer
func (l *Logger) SetOutput(w io.Writer) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.logger.SetOutput(w)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...any) {
	l.log(LevelDebug, format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...any) {
	l.log(LevelInfo, format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...any) {
	l.log(LevelWarn, format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...any) {
	l.log(LevelError, format, v...)
}

func (l *Logger) log(level Level, format string, v ...any) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if level < l.sink.level {
		return
	}

	msg := fmt.Sprintf(format, v...)
	if l.component != "" {
		l.sink.logger.Printf("[%s] %s: %s", level, l.component, msg)
		return
	}
	l.sink.logger.Printf("[%s] %s", level, msg)
}

// Package-level functions that use the default logger

// Configure configures the default logger.
func Configure(level, file string) error {
	return Default.Configure(level, file)
}

// Component returns a component logger backed by the default logger.
func Component(name string) *Logger {
	return Default.Component(name)
}

// Debug logs a debug message using the default logger
func Debug(format string, v ...any) {
	Default.Debug(format, v...)
}

// Info logs an info message using the default logger
func Info(format string, v ...any) {
	Default.Info(format, v...)
}

// Warn logs a warning message using the default logger
func Warn(format string, v ...any) {
	Default.Warn(format, v...)
}

// Error logs an error message using the default logger
func Error(format string, v ...any) {
	Default.Error(format, v...)
}

// Close closes the default logger
func Close() error {
	return Default.Close()
}

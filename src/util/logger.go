package util

import (
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"phase-planner/src/config"
)

// LogLevel represents logging level
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func parseLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger provides leveled, printf-style logging on top of zap.
// Output is console text or JSON depending on configuration.
type Logger struct {
	level LogLevel
	sugar *zap.SugaredLogger
}

// NewLogger creates a new logger from config
func NewLogger(cfg config.LoggingConfig) *Logger {
	output := io.Writer(os.Stderr)
	if cfg.File != "" {
		if f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			output = f
		}
	}
	return NewLoggerTo(output, cfg)
}

// NewLoggerTo creates a logger writing to w regardless of cfg.File
func NewLoggerTo(w io.Writer, cfg config.LoggingConfig) *Logger {
	level := parseLevel(cfg.Level)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.MessageKey = "msg"
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.TimeKey = "time"
	if !cfg.IncludeTimestamp {
		encCfg.TimeKey = ""
	}
	if !cfg.IncludeCaller {
		encCfg.CallerKey = ""
	}
	encCfg.StacktraceKey = ""

	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level.zapLevel())

	// skip log and the exported wrapper
	opts := []zap.Option{zap.AddCallerSkip(2)}
	if cfg.IncludeCaller {
		opts = append(opts, zap.AddCaller())
	}

	return &Logger{
		level: level,
		sugar: zap.New(core, opts...).Sugar(),
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.log(LogLevelDebug, msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.log(LogLevelInfo, msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.log(LogLevelWarn, msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.log(LogLevelError, msg, args...)
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	switch level {
	case LogLevelDebug:
		l.sugar.Debugf(msg, args...)
	case LogLevelWarn:
		l.sugar.Warnf(msg, args...)
	case LogLevelError:
		l.sugar.Errorf(msg, args...)
	default:
		l.sugar.Infof(msg, args...)
	}
}

// Sync flushes buffered log entries
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// GetLevel returns the current log level as a string
func (l *Logger) GetLevel() string {
	switch l.level {
	case LogLevelDebug:
		return "debug"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "info"
	}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = NewLogger(config.LoggingConfig{
		Level:            "info",
		Format:           "text",
		IncludeTimestamp: true,
	})
)

// SetDefaultLogger updates the default logger with new configuration
func SetDefaultLogger(cfg config.LoggingConfig) {
	SetDefault(NewLogger(cfg))
}

// SetDefault replaces the package-level logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Default returns the package-level logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Debug logs using the default logger
func Debug(msg string, args ...any) {
	Default().log(LogLevelDebug, msg, args...)
}

// Info logs using the default logger
func Info(msg string, args ...any) {
	Default().log(LogLevelInfo, msg, args...)
}

// Warn logs using the default logger
func Warn(msg string, args ...any) {
	Default().log(LogLevelWarn, msg, args...)
}

// Error logs using the default logger
func Error(msg string, args ...any) {
	Default().log(LogLevelError, msg, args...)
}

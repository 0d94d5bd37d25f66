package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	//nolint:gochecknoglobals // The process-wide logger is shared by every package through helper functions.
	globalLogger *zap.SugaredLogger

	//nolint:gochecknoglobals // Level is kept separately so it can be changed after the logger is built.
	globalLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	//nolint:gochecknoglobals // Protects globalLogger swaps.
	globalMutex sync.RWMutex
)

//nolint:gochecknoinits // The logger must be usable before configuration is loaded.
func init() {
	globalLogger = New(globalLevel)
}

// New creates a sugared console logger writing to stderr.
// A nil level enabler falls back to the shared atomic level.
func New(level zapcore.LevelEnabler) *zap.SugaredLogger {
	if level == nil {
		level = globalLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core).Sugar()
}

// Logger returns the global logger.
func Logger() *zap.SugaredLogger {
	globalMutex.RLock()
	defer globalMutex.RUnlock()

	return globalLogger
}

// SetLogger replaces the global logger.
func SetLogger(l *zap.SugaredLogger) {
	globalMutex.Lock()
	defer globalMutex.Unlock()

	globalLogger = l
}

// Level returns the current global log level.
func Level() zapcore.Level {
	return globalLevel.Level()
}

// SetLevel changes the global log level.
func SetLevel(level zapcore.Level) {
	globalLevel.SetLevel(level)
}

// IsDebugLevel reports whether debug messages are currently emitted.
func IsDebugLevel() bool {
	return globalLevel.Enabled(zapcore.DebugLevel)
}

// ParseLogLevel converts a textual level into a zap level.
// It returns InfoLevel and false for unknown values.
func ParseLogLevel(value string) (zapcore.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	case "dpanic":
		return zapcore.DPanicLevel, true
	case "panic":
		return zapcore.PanicLevel, true
	case "fatal":
		return zapcore.FatalLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

// Debug logs a message at debug level.
func Debug(_ context.Context, args ...any) {
	Logger().Debug(args...)
}

// Debugf logs a formatted message at debug level.
func Debugf(_ context.Context, format string, args ...any) {
	Logger().Debugf(format, args...)
}

// DebugKV logs a message with key-value pairs at debug level.
func DebugKV(_ context.Context, message string, kvs ...any) {
	Logger().Debugw(message, kvs...)
}

// Info logs a message at info level.
func Info(_ context.Context, args ...any) {
	Logger().Info(args...)
}

// Infof logs a formatted message at info level.
func Infof(_ context.Context, format string, args ...any) {
	Logger().Infof(format, args...)
}

// InfoKV logs a message with key-value pairs at info level.
func InfoKV(_ context.Context, message string, kvs ...any) {
	Logger().Infow(message, kvs...)
}

// Warn logs a message at warn level.
func Warn(_ context.Context, args ...any) {
	Logger().Warn(args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(_ context.Context, format string, args ...any) {
	Logger().Warnf(format, args...)
}

// WarnKV logs a message with key-value pairs at warn level.
func WarnKV(_ context.Context, message string, kvs ...any) {
	Logger().Warnw(message, kvs...)
}

// Error logs a message at error level.
func Error(_ context.Context, args ...any) {
	Logger().Error(args...)
}

// Errorf logs a formatted message at error level.
func Errorf(_ context.Context, format string, args ...any) {
	Logger().Errorf(format, args...)
}

// ErrorKV logs a message with key-value pairs at error level.
func ErrorKV(_ context.Context, message string, kvs ...any) {
	Logger().Errorw(message, kvs...)
}

// Fatal logs a message at fatal level and exits.
func Fatal(_ context.Context, args ...any) {
	Logger().Fatal(args...)
}

// Fatalf logs a formatted message at fatal level and exits.
func Fatalf(_ context.Context, format string, args ...any) {
	Logger().Fatalf(format, args...)
}

// FatalKV logs a message with key-value pairs at fatal level and exits.
func FatalKV(_ context.Context, message string, kvs ...any) {
	Logger().Fatalw(message, kvs...)
}

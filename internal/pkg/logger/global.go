package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type ctxKey struct{}

var (
	// globalLogger holds the singleton logger instance
	globalLogger *ZapLogger
	// once ensures the fallback logger is initialized only once
	once sync.Once
	// mu protects access to the global logger
	mu sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
// or a production default if none is set
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	once.Do(func() {
		defaultLogger, _ := zap.NewProduction()
		mu.Lock()
		if globalLogger == nil {
			globalLogger = FromZap(defaultLogger)
		}
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// WithContext stores request-scoped fields (request id, user id) on ctx
func WithContext(ctx context.Context, fields ...Field) context.Context {
	existing, _ := ctx.Value(ctxKey{}).([]Field)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxKey{}, merged)
}

func fieldsFrom(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	scoped, _ := ctx.Value(ctxKey{}).([]Field)
	if len(scoped) == 0 {
		return fields
	}
	return append(append(make([]Field, 0, len(scoped)+len(fields)), scoped...), fields...)
}

// InfoCtx logs an info message with request-scoped fields
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fieldsFrom(ctx, fields)...)
}

// WarnCtx logs a warning message with request-scoped fields
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fieldsFrom(ctx, fields)...)
}

// DebugCtx logs a debug message with request-scoped fields
func DebugCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fieldsFrom(ctx, fields)...)
}

// ErrorCtx logs an error message with request-scoped fields
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fieldsFrom(ctx, fields)...)
}

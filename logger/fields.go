package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across jpoet.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldCommand   = "command"

	// Emission
	FieldPackage = "package"
	FieldType    = "type"
	FieldFile    = "file"
	FieldPass    = "pass"
	FieldImports = "imports"
	FieldModel   = "model"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"
	FieldHint  = "hint"

	// Counts and sizes
	FieldCount = "count"
	FieldBytes = "bytes"
)

// Context keys for propagating logging context
type contextKey string

const (
	componentKey contextKey = "logger_component"
	packageKey   contextKey = "logger_package"
)

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// WithPackage adds the Java package being generated to the context for logging
func WithPackage(ctx context.Context, pkg string) context.Context {
	return context.WithValue(ctx, packageKey, pkg)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}

	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}
	if pkg, ok := ctx.Value(packageKey).(string); ok && pkg != "" {
		fields = append(fields, FieldPackage, pkg)
	}

	return fields
}

// LoggerFromContext returns a logger with fields extracted from context.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return Logger
	}
	return Logger.With(fields...)
}

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	type Generator struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func New() *Generator {
//	    return &Generator{logger: logger.ComponentLogger("javagen")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
//	fileLogger := logger.ChildLogger(base, logger.FieldFile, path)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}

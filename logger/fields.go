package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
const (
	FieldComponent = "component"
	FieldCommand   = "command"

	FieldKey    = "key"
	FieldName   = "name"
	FieldFormat = "format"
	FieldCount  = "count"
	FieldDiffs  = "diffs"

	FieldFile      = "file"
	FieldError     = "error"
	FieldVerbosity = "verbosity"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	type Checker struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewChecker() *Checker {
//	    return &Checker{logger: logger.ComponentLogger("golden")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}

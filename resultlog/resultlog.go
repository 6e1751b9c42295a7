// Package resultlog returns callbacks for Result.Inspect and
// Result.InspectErr that write the payload to a go-log logger.
//
//	r.InspectErr(resultlog.Warn[string](log, "lookup failed"))
package resultlog

import (
	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"
)

const (
	valueKey = "value"
	errorKey = "error"
)

// Debug logs an Ok value at debug level.
func Debug[T any](log *logging.ZapEventLogger, msg string) func(T) {
	l := desugar(log)
	return func(v T) {
		l.Debug(msg, zap.Any(valueKey, v))
	}
}

// Info logs an Ok value at info level.
func Info[T any](log *logging.ZapEventLogger, msg string) func(T) {
	l := desugar(log)
	return func(v T) {
		l.Info(msg, zap.Any(valueKey, v))
	}
}

// Warn logs an Err value at warn level.
func Warn[E any](log *logging.ZapEventLogger, msg string) func(E) {
	l := desugar(log)
	return func(e E) {
		l.Warn(msg, errField(e))
	}
}

// Error logs an Err value at error level.
func Error[E any](log *logging.ZapEventLogger, msg string) func(E) {
	l := desugar(log)
	return func(e E) {
		l.Error(msg, errField(e))
	}
}

func desugar(log *logging.ZapEventLogger) *zap.Logger {
	// One frame for the closure returned to Inspect, one for Inspect itself.
	return log.Desugar().WithOptions(zap.AddCallerSkip(2))
}

func errField[E any](e E) zap.Field {
	if err, ok := any(e).(error); ok && err != nil {
		return zap.NamedError(errorKey, err)
	}
	return zap.Any(errorKey, e)
}

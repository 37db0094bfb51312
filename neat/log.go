package neat

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
)

// LoggerLevel specifies the verbosity of the package logger.
type LoggerLevel string

const (
	// LogLevelDebug is the most verbose logger level.
	LogLevelDebug LoggerLevel = "debug"
	// LogLevelInfo logs generation-level progress.
	LogLevelInfo LoggerLevel = "info"
	// LogLevelWarning logs recoverable anomalies, e.g. a population padded from its champion after falling short of its target size.
	LogLevelWarning LoggerLevel = "warn"
	// LogLevelError logs conditions the caller should inspect.
	LogLevelError LoggerLevel = "error"
)

var (
	// LogLevel is the currently active logger level. Defaults to LogLevelWarning.
	LogLevel = LogLevelWarning

	loggerDebug = log.New(os.Stdout, "DEBUG: ", log.Ltime|log.Lshortfile)
	loggerInfo  = log.New(os.Stdout, "INFO: ", log.Ltime|log.Lshortfile)
	loggerWarn  = log.New(os.Stdout, "WARN: ", log.Ltime|log.Lshortfile)
	loggerError = log.New(os.Stderr, "ERROR: ", log.Ltime|log.Lshortfile)

	// DebugLog emits a message at debug level.
	DebugLog = func(message string) {
		if acceptLogLevel(LogLevel, LogLevelDebug) {
			_ = loggerDebug.Output(2, message)
		}
	}
	// InfoLog emits a message at info level.
	InfoLog = func(message string) {
		if acceptLogLevel(LogLevel, LogLevelInfo) {
			_ = loggerInfo.Output(2, message)
		}
	}
	// WarnLog emits a message at warn level.
	WarnLog = func(message string) {
		if acceptLogLevel(LogLevel, LogLevelWarning) {
			_ = loggerWarn.Output(2, message)
		}
	}
	// ErrorLog emits a message at error level.
	ErrorLog = func(message string) {
		if acceptLogLevel(LogLevel, LogLevelError) {
			_ = loggerError.Output(2, message)
		}
	}
)

// InitLogger sets the active logger level from its string name.
func InitLogger(level string) error {
	switch LoggerLevel(level) {
	case LogLevelDebug:
		LogLevel = LogLevelDebug
	case LogLevelInfo:
		LogLevel = LogLevelInfo
	case LogLevelWarning:
		LogLevel = LogLevelWarning
	case LogLevelError:
		LogLevel = LogLevelError
	default:
		return errors.Errorf("unsupported log level: [%s]", level)
	}
	return nil
}

func acceptLogLevel(current, target LoggerLevel) bool {
	switch current {
	case LogLevelDebug:
		return true
	case LogLevelInfo:
		return target == LogLevelInfo || target == LogLevelWarning || target == LogLevelError
	case LogLevelWarning:
		return target == LogLevelWarning || target == LogLevelError
	case LogLevelError:
		return target == LogLevelError
	}
	_ = loggerError.Output(2, fmt.Sprintf("unsupported NEAT log level set: %q", current))
	return false
}

package internal

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// LogLevelEnv selects the level of DefaultLogger
const LogLevelEnv = "EDA_LOG_LEVEL"

// LogLevel represents different logging verbosity levels
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var levelNames = map[string]LogLevel{
	"ERROR": LogLevelError,
	"WARN":  LogLevelWarn,
	"INFO":  LogLevelInfo,
	"DEBUG": LogLevelDebug,
}

// ParseLogLevel maps ERROR, WARN, INFO or DEBUG (any case) to a level
func ParseLogLevel(s string) (LogLevel, error) {
	level, ok := levelNames[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// Logger provides leveled logging on top of the standard logger
type Logger struct {
	level  LogLevel
	logger *log.Logger
}

// NewLogger creates a new logger with the specified level writing to the standard logger
func NewLogger(level LogLevel) *Logger {
	return &Logger{level: level, logger: log.Default()}
}

// NewLoggerTo creates a logger writing to a dedicated *log.Logger
func NewLoggerTo(level LogLevel, logger *log.Logger) *Logger {
	return &Logger{level: level, logger: logger}
}

// NewDefaultLogger creates a logger based on the EDA_LOG_LEVEL environment variable
func NewDefaultLogger() *Logger {
	level, err := ParseLogLevel(os.Getenv(LogLevelEnv))
	if err != nil {
		level = LogLevelInfo
	}
	return NewLogger(level)
}

func (l *Logger) printf(level LogLevel, tag, format string, args ...interface{}) {
	if l == nil || l.level < level {
		return
	}
	l.logger.Printf("["+tag+"] "+format, args...)
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.printf(LogLevelError, "ERROR", format, args...)
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	l.printf(LogLevelWarn, "WARN", format, args...)
}

// Info logs info messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.printf(LogLevelInfo, "INFO", format, args...)
}

// Debug logs debug messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.printf(LogLevelDebug, "DEBUG", format, args...)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() LogLevel {
	return l.level
}

// DefaultLogger is used by components that are not given a logger
var DefaultLogger = NewDefaultLogger()

package util

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// --------------------------------------------------------------------------
// Log Levels
// --------------------------------------------------------------------------

type LogLevel int

const (
	LevelError LogLevel = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

// parseLogLevel converts a string level to LogLevel
func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warning", "warn":
		return LevelWarning
	case "error":
		return LevelError
	default:
		panic(fmt.Sprintf("invalid log level: %s. must be one of debug, info, warn, error", level))
	}
}

// --------------------------------------------------------------------------
// Leveled Logger
// --------------------------------------------------------------------------

// appLogger writes leveled log lines with a fixed component column.
// Diagnostics go to stderr so command output on stdout stays scriptable.
type appLogger struct {
	name   string
	level  LogLevel
	logger *log.Logger
}

func (l *appLogger) Debugf(format string, args ...interface{}) {
	if l.level >= LevelDebug {
		l.log("DEBUG", format, args...)
	}
}

func (l *appLogger) Infof(format string, args ...interface{}) {
	if l.level >= LevelInfo {
		l.log("INFO", format, args...)
	}
}

func (l *appLogger) Warningf(format string, args ...interface{}) {
	if l.level >= LevelWarning {
		l.log("WARN", format, args...)
	}
}

func (l *appLogger) Errorf(format string, args ...interface{}) {
	if l.level >= LevelError {
		l.log("ERROR", format, args...)
	}
}

// log formats and writes a log message. this internal helper is used by the public methods
func (l *appLogger) log(levelStr string, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%-5s | %-15s | %s", levelStr, l.name, message)
}

// --------------------------------------------------------------------------
// Logger Factory
// --------------------------------------------------------------------------

// Logger returns a leveled logger for the named component. The level is
// taken from the log-level configuration and defaults to warn, keeping
// normal command output free of diagnostics.
func Logger(name string) *appLogger {
	level := viper.GetString("log-level")
	if level == "" {
		level = "warn"
	}

	return &appLogger{
		name:   name,
		level:  parseLogLevel(level),
		logger: log.New(os.Stderr, "", log.Ldate|log.Ltime),
	}
}

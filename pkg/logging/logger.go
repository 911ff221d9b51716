// Package logging installs the process-wide logger used by every package.
//
// Packages obtain a named logger once with logger.GetLogger and keep it in a
// package variable; Init swaps in the formatting factory and sets the level of
// every known logger.
package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/lni/dragonboat/v4/logger"
)

// Names of the loggers used in this module.
var Names = []string{"buffer", "codec", "store", "api", "cli"}

// --------------------------------------------------------------------------
// Logger (implements dragonboat logger.ILogger)
// --------------------------------------------------------------------------

type kcodecLogger struct {
	name   string
	level  logger.LogLevel
	logger *log.Logger
}

func (l *kcodecLogger) SetLevel(level logger.LogLevel) {
	l.level = level
}

func (l *kcodecLogger) Debugf(format string, args ...interface{}) {
	if l.level >= logger.DEBUG {
		l.log("DEBUG", format, args...)
	}
}

func (l *kcodecLogger) Infof(format string, args ...interface{}) {
	if l.level >= logger.INFO {
		l.log("INFO", format, args...)
	}
}

func (l *kcodecLogger) Warningf(format string, args ...interface{}) {
	if l.level >= logger.WARNING {
		l.log("WARN", format, args...)
	}
}

func (l *kcodecLogger) Errorf(format string, args ...interface{}) {
	if l.level >= logger.ERROR {
		l.log("ERROR", format, args...)
	}
}

func (l *kcodecLogger) Panicf(format string, args ...interface{}) {
	if l.level >= logger.CRITICAL {
		panic(fmt.Sprintf(format, args...))
	}
}

func (l *kcodecLogger) log(levelStr string, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%-5s | %-6s | %s", levelStr, l.name, message)
}

// CreateLogger is the logger.Factory installed by Init.
func CreateLogger(pkgName string) logger.ILogger {
	return &kcodecLogger{
		name:   pkgName,
		level:  logger.INFO,
		logger: log.New(os.Stderr, "", log.Ldate|log.Ltime),
	}
}

// ParseLevel converts a level name to a logger.LogLevel.
func ParseLevel(level string) (logger.LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logger.DEBUG, nil
	case "info", "":
		return logger.INFO, nil
	case "warning", "warn":
		return logger.WARNING, nil
	case "error":
		return logger.ERROR, nil
	default:
		return logger.INFO, fmt.Errorf("invalid log level: %s. must be one of debug, info, warn, error", level)
	}
}

var installFactory sync.Once

// Init installs CreateLogger as the logger factory and applies level to the
// loggers named in Names. dragonboat accepts a factory only once per process,
// so later calls only change the level.
func Init(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	installFactory.Do(func() {
		logger.SetLoggerFactory(CreateLogger)
	})
	for _, name := range Names {
		logger.GetLogger(name).SetLevel(lvl)
	}
	return nil
}

package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

type level string

const (
	levelDebug level = "DEBUG"
	levelInfo  level = "INFO"
	levelWarn  level = "WARN"
)

// Logger writes leveled lines through the standard logger. Debug lines are
// dropped unless verbose mode is on.
type Logger struct {
	verbose bool
	mu      sync.RWMutex
}

var (
	globalLogger *Logger
	loggerOnce   sync.Once
)

// GetLogger returns the process-wide logger
func GetLogger() *Logger {
	loggerOnce.Do(func() {
		globalLogger = &Logger{}
	})
	return globalLogger
}

// SetVerbose toggles debug output
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = verbose
}

// IsVerbose reports whether debug output is on
func (l *Logger) IsVerbose() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.verbose
}

func (l *Logger) logf(lvl level, format string, args ...interface{}) {
	if lvl == levelDebug && !l.IsVerbose() {
		return
	}
	log.Printf("["+string(lvl)+"] "+format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) { l.logf(levelDebug, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.logf(levelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.logf(levelWarn, format, args...) }

func Debugf(format string, args ...interface{}) { GetLogger().Debug(format, args...) }
func Infof(format string, args ...interface{})  { GetLogger().Info(format, args...) }
func Warnf(format string, args ...interface{})  { GetLogger().Warn(format, args...) }

// SetVerboseMode applies the --verbose flag: debug lines on, with timestamps
// and call sites. Output goes to stderr either way.
func SetVerboseMode(verbose bool) {
	GetLogger().SetVerbose(verbose)
	if verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	} else {
		log.SetFlags(0)
	}
	log.SetOutput(os.Stderr)
}

// SilenceLogs discards log output. The terminal UI calls it when no log file
// is configured so stray writes do not corrupt the alternate screen.
func SilenceLogs() {
	log.SetOutput(io.Discard)
}

// LogOperation runs fn between "begin" and "done"/"failed" debug lines and
// returns its error unchanged.
func LogOperation(name string, fn func() error) error {
	l := GetLogger()
	l.Debug("%s: begin", name)
	if err := fn(); err != nil {
		l.Debug("%s: failed: %v", name, err)
		return err
	}
	l.Debug("%s: done", name)
	return nil
}

// LogOperationf is LogOperation with a formatted name.
func LogOperationf(format string, fn func() error, args ...interface{}) error {
	return LogOperation(fmt.Sprintf(format, args...), fn)
}

package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

var (
	errorLogger *log.Logger
	panicLogger *log.Logger
)

// InitLogger opens the site's two append-only log files under logs/.
// Logging must never take a request down: before InitLogger runs (or when
// it never does, as in tests) LogError and LogPanic are no-ops.
func InitLogger() error {
	const logsDir = "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	errorFile, err := openLogFile(filepath.Join(logsDir, "errors.log"))
	if err != nil {
		return err
	}
	panicFile, err := openLogFile(filepath.Join(logsDir, "panics.log"))
	if err != nil {
		return err
	}

	errorLogger = log.New(errorFile, "", 0)
	panicLogger = log.New(panicFile, "", 0)
	return nil
}

func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %v", path, err)
	}
	return f, nil
}

// LogError records a handler or service failure with the caller's location.
func LogError(err error, context string) {
	writeEntry(errorLogger, "ERROR", context, err, 2)
}

// LogPanic records a recovered panic. The extra caller skip points past the
// recovery middleware's closure to the frame that actually panicked into it.
func LogPanic(recovered interface{}, context string) {
	writeEntry(panicLogger, "PANIC", context, recovered, 3)
}

func writeEntry(l *log.Logger, level, context string, v interface{}, skip int) {
	if l == nil {
		return
	}
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file = "unknown"
		line = 0
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	l.Printf("[%s] %s in %s:%d - %s: %v", timestamp, level, filepath.Base(file), line, context, v)
}

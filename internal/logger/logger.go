// Package logger provides centralized file logging for vpnman.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"
)

var (
	logFile  *os.File
	logMutex sync.Mutex
	logPath  string
)

// Init initializes the logger.
func Init() error {
	logMutex.Lock()
	defer logMutex.Unlock()

	logPath = filepath.Join(getLogDir(), "vpnman.log")

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	logFile = f

	// Redirect stderr to the log file so panics are captured
	redirectStderr(f)

	return nil
}

// Close closes the log file.
func Close() {
	logMutex.Lock()
	defer logMutex.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Log writes a log message.
func Log(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	logMutex.Lock()
	defer logMutex.Unlock()
	if logFile != nil {
		fmt.Fprintf(logFile, "[%s] %s\n", timestamp, message)
		logFile.Sync()
	}
}

// Info logs an info message.
func Info(format string, args ...interface{}) {
	Log("INFO: "+format, args...)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	Log("ERROR: "+format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...interface{}) {
	Log("DEBUG: "+format, args...)
}

// Warning logs a warning message.
func Warning(format string, args ...interface{}) {
	Log("WARN: "+format, args...)
}

// Toggle logs a connect/disconnect event.
func Toggle(format string, args ...interface{}) {
	Log("TOGGLE: "+format, args...)
}

// GetLogPath returns the path to the log file.
func GetLogPath() string {
	return logPath
}

// Recover should be deferred at the top of every goroutine to catch panics.
// Usage: go func() { defer logger.Recover("myGoroutine"); ... }()
func Recover(name string) {
	if r := recover(); r != nil {
		Error("PANIC in %s: %v\n%s", name, r, string(debug.Stack()))
	}
}

// SafeGo launches a goroutine with panic recovery.
func SafeGo(name string, fn func()) {
	go func() {
		defer Recover(name)
		fn()
	}()
}

// ClearLogs truncates the log file.
func ClearLogs() error {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFile != nil {
		logFile.Close()
	}

	if err := os.WriteFile(logPath, []byte{}, 0644); err != nil {
		return err
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	logFile = f
	return nil
}

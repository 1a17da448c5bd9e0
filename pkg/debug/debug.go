// Package debug provides optional file-based debug logging.
//
// When the AXISFLOW_DEBUG environment variable is set to a file path,
// debug messages are appended to that file. Otherwise, logging is a
// no-op until Init is called explicitly.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	logFile *os.File
	mu      sync.Mutex
	checked bool
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "axisflow.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	checked = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "axisflow.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	logFile = f
	return nil
}

// Close closes the debug log file. Further Log calls are no-ops until
// the next Init.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	checked = true
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp. Without a
// prior Init, the first call consults AXISFLOW_DEBUG; when the
// variable is unset, every Log is a no-op.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !checked {
		checked = true
		if path, ok := os.LookupEnv("AXISFLOW_DEBUG"); ok {
			initLocked(path)
		}
	}
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}

package pagination

import "fmt"

// Logger is the logging contract used across the package.
// Args are key/value pairs following the message, not format arguments,
// so a go-router printf-style logger needs an adapter to be passed here.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var LoggerEnabled = false

type defaultLogger struct {
}

func (d *defaultLogger) Debug(msg string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[DEBUG] %s %v\n", msg, args)
	}
}

func (d *defaultLogger) Info(msg string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[INFO] %s %v\n", msg, args)
	}
}

func (d *defaultLogger) Warn(msg string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[WARN] %s %v\n", msg, args)
	}
}

func (d *defaultLogger) Error(msg string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[ERROR] %s %v\n", msg, args)
	}
}

// DefaultLogger returns the package logger that only prints when
// LoggerEnabled is set.
func DefaultLogger() Logger {
	return &defaultLogger{}
}

func getLogger(lgrs ...Logger) Logger {
	if len(lgrs) > 0 && lgrs[0] != nil {
		return lgrs[0]
	}
	return &defaultLogger{}
}

// Package logger provides a small wrapper around logrus for structured logging.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the global logger instance.
var Logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// SetLevel parses level ("debug", "info", "warn", ...) and applies it.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger.SetLevel(lvl)
	return nil
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// fields turns alternating key/value arguments into logrus fields. A trailing
// key without a value is logged under "!BADKEY".
func fields(args []any) logrus.Fields {
	f := make(logrus.Fields, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || i+1 >= len(args) {
			f["!BADKEY"] = args[i]
			continue
		}
		if err, isErr := args[i+1].(error); isErr && key == "error" {
			f[logrus.ErrorKey] = err
			continue
		}
		f[key] = args[i+1]
	}
	return f
}

// Error logs an error message.
func Error(msg string, args ...any) {
	Logger.WithFields(fields(args)).Error(msg)
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	Logger.WithFields(fields(args)).Info(msg)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	Logger.WithFields(fields(args)).Warn(msg)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.WithFields(fields(args)).Debug(msg)
}

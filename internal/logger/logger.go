// Package logger provides levelled logging for the BMI CLI.
// It wraps a shared logrus logger. Output defaults to stderr in the form
// "[LEVEL] message key=value" so it never mixes with command output.
// Debug lines trace the calculation pipeline when --verbose is set.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. Use it directly for structured fields.
var Log = newLogger()

var mu sync.Mutex

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&prefixFormatter{})
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetVerbose enables or disables debug logging. Disabling restores warn level.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	if v {
		Log.SetLevel(logrus.DebugLevel)
		return
	}
	Log.SetLevel(logrus.WarnLevel)
}

// IsVerbose returns true if debug logging is enabled.
func IsVerbose() bool {
	return Log.IsLevelEnabled(logrus.DebugLevel)
}

// SetLevel sets the level by name: debug, info, warn (or warning), error.
func SetLevel(level string) error {
	mu.Lock()
	defer mu.Unlock()

	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "info":
		Log.SetLevel(logrus.InfoLevel)
	case "warning", "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	return nil
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	Log.SetOutput(w)
}

// Debug logs a formatted message at debug level.
func Debug(format string, args ...any) {
	Log.Debugf(format, args...)
}

// Info logs a formatted message at info level.
func Info(format string, args ...any) {
	Log.Infof(format, args...)
}

// Warn logs a formatted message at warn level.
func Warn(format string, args ...any) {
	Log.Warnf(format, args...)
}

// Section prints a section header if debug logging is enabled.
func Section(name string) {
	if !IsVerbose() {
		return
	}
	Log.WithField(sectionField, true).Debug(name)
}

const sectionField = "_section"

// prefixFormatter renders "[LEVEL] message k=v" lines.
type prefixFormatter struct{}

func (f *prefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	if _, ok := entry.Data[sectionField]; ok {
		fmt.Fprintf(&b, "\n=== %s ===\n", entry.Message)
		return b.Bytes(), nil
	}

	level := strings.ToUpper(entry.Level.String())
	if level == "WARNING" {
		level = "WARN"
	}
	fmt.Fprintf(&b, "[%s] %s", level, entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// Package output provides logging, styling, and terminal presentation
// helpers shared by the velac commands.
package output

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the global logger. Commands configure it once via
// SetupLogging and write through the package-level helpers below.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportCaller:    false,
	ReportTimestamp: false,
	TimeFormat:      time.Kitchen,
	Prefix:          "",
})

// SetupLogging configures the global logger from the CLI flags.
// Verbose enables debug-level output and caller reporting; timestamps
// prefixes every line with the wall-clock time.
func SetupLogging(verbose, timestamps bool) {
	if verbose {
		Logger.SetLevel(log.DebugLevel)
		Logger.SetReportCaller(true)
	} else {
		Logger.SetLevel(log.InfoLevel)
		Logger.SetReportCaller(false)
	}
	Logger.SetReportTimestamp(timestamps)
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an informational message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs an error message and exits with status 1.
func Fatal(msg interface{}, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

// Print writes directly to stdout, bypassing log levels. Use for
// command results that must appear even with logging silenced.
func Print(msg string) {
	os.Stdout.WriteString(msg)
}

// Println writes a line to stdout, bypassing log levels.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}

package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. It is safe for concurrent
// usage.
type Logger struct {
	// level is the maximum level at which the logger emits messages.
	level Level
	// prefix is any prefix specified for the logger.
	prefix string
	// lock serializes access to the underlying writer.
	lock *sync.Mutex
	// output is the standard library logger used to perform writes.
	output *log.Logger
}

// NewLogger creates a new logger that emits messages at or below the specified
// level to the specified writer.
func NewLogger(level Level, writer io.Writer) *Logger {
	return &Logger{
		level:  level,
		lock:   &sync.Mutex{},
		output: log.New(writer, "", log.LstdFlags),
	}
}

// RootLogger is the root logger from which all other loggers derive. It emits
// warnings and errors to standard error.
var RootLogger = NewLogger(LevelWarn, os.Stderr)

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger, sharing the underlying writer and its lock.
	return &Logger{
		level:  l.level,
		prefix: prefix,
		lock:   l.lock,
		output: l.output,
	}
}

// Level returns the logger's level. It returns LevelDisabled for nil loggers.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	return l.level
}

// emit is the internal logging method.
func (l *Logger) emit(level Level, line string) {
	// Check that the message is loggable at the logger's level.
	if l == nil || level > l.level {
		return
	}

	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Log.
	l.lock.Lock()
	defer l.lock.Unlock()
	l.output.Output(3, line)
}

// Error logs error information with an error prefix and red color.
func (l *Logger) Error(v ...any) {
	l.emit(LevelError, color.RedString("Error: %s", fmt.Sprint(v...)))
}

// Errorf logs error information with an error prefix and red color, with
// semantics equivalent to fmt.Printf.
func (l *Logger) Errorf(format string, v ...any) {
	l.emit(LevelError, color.RedString("Error: %s", fmt.Sprintf(format, v...)))
}

// Warn logs warning information with a warning prefix and yellow color.
func (l *Logger) Warn(v ...any) {
	l.emit(LevelWarn, color.YellowString("Warning: %s", fmt.Sprint(v...)))
}

// Warnf logs warning information with a warning prefix and yellow color, with
// semantics equivalent to fmt.Printf.
func (l *Logger) Warnf(format string, v ...any) {
	l.emit(LevelWarn, color.YellowString("Warning: %s", fmt.Sprintf(format, v...)))
}

// Info logs information with semantics equivalent to fmt.Print.
func (l *Logger) Info(v ...any) {
	l.emit(LevelInfo, fmt.Sprint(v...))
}

// Infof logs information with semantics equivalent to fmt.Printf.
func (l *Logger) Infof(format string, v ...any) {
	l.emit(LevelInfo, fmt.Sprintf(format, v...))
}

// Debug logs advanced execution information with semantics equivalent to
// fmt.Print.
func (l *Logger) Debug(v ...any) {
	l.emit(LevelDebug, fmt.Sprint(v...))
}

// Debugf logs advanced execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Debugf(format string, v ...any) {
	l.emit(LevelDebug, fmt.Sprintf(format, v...))
}

// Trace logs low-level execution information with semantics equivalent to
// fmt.Print.
func (l *Logger) Trace(v ...any) {
	l.emit(LevelTrace, fmt.Sprint(v...))
}

// Tracef logs low-level execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Tracef(format string, v ...any) {
	l.emit(LevelTrace, fmt.Sprintf(format, v...))
}

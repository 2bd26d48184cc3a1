// Package vlog provides a scoped, level-filtered message accumulator for
// validation and diagnostic passes. A caller logs messages tagged with a
// severity and a property name while walking a nested structure; the
// accumulated messages can be inspected afterwards or rendered as an
// indented, scope-nested report.
package vlog

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// ErrInvalidLevel is returned by Log when the given level is not exactly one
// of the five severity flags.
var ErrInvalidLevel = errors.New("level must be a single severity flag")

// Logger accumulates validation messages for a single validation pass.
//
// A Logger is single-owner and not safe for concurrent use. There is no reset;
// create a fresh Logger per pass.
type Logger struct {
	enabled  Level
	logged   Level
	errors   int
	warnings int
	scope    []string
	messages []Message
	goLog    *log.Logger
}

// NewLogger creates a logger that retains messages matching the enabled mask.
func NewLogger(enabled Level) *Logger {
	return &Logger{
		enabled:  enabled,
		messages: make([]Message, 0, 16),
		goLog:    log.New(io.Discard, "", 0),
	}
}

// NewDefaultLogger creates a logger enabled for DefaultLevels
// (Information, Warning and Error).
func NewDefaultLogger() *Logger {
	return NewLogger(DefaultLevels)
}

// SetWriter sets an output destination that every retained message is also
// written to, one line per message. It has no effect on accumulated state.
func (l *Logger) SetWriter(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	l.goLog.SetOutput(w)
}

// EnabledLevels returns the current enabled mask.
func (l *Logger) EnabledLevels() Level {
	return l.enabled
}

// SetEnabledLevels replaces the enabled mask. It affects only subsequent Log
// calls; already-recorded messages are never filtered retroactively.
func (l *Logger) SetEnabledLevels(enabled Level) {
	l.enabled = enabled
}

// IsEnabled reports whether messages at the given level would be retained.
func (l *Logger) IsEnabled(level Level) bool {
	return level&l.enabled != 0
}

// Log records a message at the given level under the current scope.
//
// The level must be exactly one of the five severity flags; anything else
// fails with ErrInvalidLevel before any state is touched. Warning and Error
// calls bump their counters even when the level is filtered out; the message
// itself (and the logged-levels mask) is only retained when the level is
// enabled.
func (l *Logger) Log(level Level, property, message string) error {
	if !level.IsSingular() {
		return fmt.Errorf("%w: got %s", ErrInvalidLevel, level)
	}

	switch level {
	case LevelWarning:
		l.warnings++
	case LevelError:
		l.errors++
	}

	if level&l.enabled == 0 {
		return nil
	}

	l.logged |= level
	scope := make([]string, len(l.scope))
	copy(scope, l.scope)
	l.messages = append(l.messages, Message{
		Scope:    scope,
		Level:    level,
		Property: property,
		Text:     message,
	})
	l.goLog.Printf("%s: %s: %s", level, property, message)
	return nil
}

// Trace logs a trace message.
func (l *Logger) Trace(property, message string) {
	l.Log(LevelTrace, property, message)
}

// Tracef logs a formatted trace message.
func (l *Logger) Tracef(property, format string, v ...interface{}) {
	l.Log(LevelTrace, property, fmt.Sprintf(format, v...))
}

// Debug logs a debug message.
func (l *Logger) Debug(property, message string) {
	l.Log(LevelDebug, property, message)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(property, format string, v ...interface{}) {
	l.Log(LevelDebug, property, fmt.Sprintf(format, v...))
}

// Info logs an informational message.
func (l *Logger) Info(property, message string) {
	l.Log(LevelInformation, property, message)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(property, format string, v ...interface{}) {
	l.Log(LevelInformation, property, fmt.Sprintf(format, v...))
}

// Warning logs a warning message.
func (l *Logger) Warning(property, message string) {
	l.Log(LevelWarning, property, message)
}

// Warningf logs a formatted warning message.
func (l *Logger) Warningf(property, format string, v ...interface{}) {
	l.Log(LevelWarning, property, fmt.Sprintf(format, v...))
}

// Error logs an error message.
func (l *Logger) Error(property, message string) {
	l.Log(LevelError, property, message)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(property, format string, v ...interface{}) {
	l.Log(LevelError, property, fmt.Sprintf(format, v...))
}

// LoggedLevels returns the union of the levels of all retained messages.
func (l *Logger) LoggedLevels() Level {
	return l.logged
}

// Errors returns the number of Log calls made at LevelError, including
// filtered ones.
func (l *Logger) Errors() int {
	return l.errors
}

// Warnings returns the number of Log calls made at LevelWarning, including
// filtered ones.
func (l *Logger) Warnings() int {
	return l.warnings
}

// PassedValidation reports whether no error-level message was retained.
func (l *Logger) PassedValidation() bool {
	return l.logged&LevelError == 0
}

// HasWarning reports whether a warning-level message was retained.
func (l *Logger) HasWarning() bool {
	return l.logged&LevelWarning != 0
}

// HasFlag reports whether a message at the given level was retained.
func (l *Logger) HasFlag(level Level) bool {
	return l.logged&level != 0
}

// LogMessages returns a copy of all retained messages in logging order.
func (l *Logger) LogMessages() []Message {
	messagesCopy := make([]Message, len(l.messages))
	copy(messagesCopy, l.messages)
	return messagesCopy
}

// Size returns the number of retained messages.
func (l *Logger) Size() int {
	return len(l.messages)
}

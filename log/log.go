// Package log wraps logrus so the rest of this module logs through one
// narrow interface instead of depending on logrus directly.
package log

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// Fields aliases logrus.Fields.
type Fields = logrus.Fields

// Entry aliases logrus.Entry.
type Entry = logrus.Entry

// Logger is the interface for loggers used across cmd and ffi.
type Logger interface {
	Debug(...interface{})
	Debugf(string, ...interface{})

	Info(...interface{})
	Infof(string, ...interface{})

	Warn(...interface{})
	Warnf(string, ...interface{})

	Error(...interface{})
	Errorf(string, ...interface{})

	WithField(key string, value interface{}) *Entry
	WithFields(Fields) *Entry
	WithContext(context.Context) Logger

	SetLevel(string) error
	SetOutput(io.Writer)
	SetJSONFormatter()
}

type logger struct {
	entry *logrus.Entry
}

// NewLogger creates a standalone logger, independent of the package-level
// global one below.
func NewLogger() Logger {
	l := logrus.New()
	return logger{entry: logrus.NewEntry(l)}
}

func (l logger) WithContext(ctx context.Context) Logger {
	return logger{l.entry.WithContext(ctx)}
}

func (l logger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l logger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l logger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l logger) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

func (l logger) WithField(key string, value interface{}) *Entry {
	return l.entry.WithField(key, value)
}

func (l logger) WithFields(fields Fields) *Entry {
	return l.entry.WithFields(fields)
}

func (l logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.entry.Logger.SetLevel(lvl)
	return nil
}

func (l logger) SetOutput(w io.Writer) { l.entry.Logger.SetOutput(w) }

func (l logger) SetJSONFormatter() { l.entry.Logger.SetFormatter(&logrus.JSONFormatter{}) }

var origLogger = logrus.New()
var globalLogger = logger{entry: logrus.NewEntry(origLogger)}

// Global returns the package-level logger used by cmd and ffi when no
// request-scoped logger has been threaded in.
func Global() Logger { return globalLogger }

// WithContext returns the global logger bound to ctx.
func WithContext(ctx context.Context) Logger {
	return logger{globalLogger.entry.WithContext(ctx)}
}

func Debug(args ...interface{})                 { globalLogger.entry.Debug(args...) }
func Debugf(format string, args ...interface{}) { globalLogger.entry.Debugf(format, args...) }
func Info(args ...interface{})                  { globalLogger.entry.Info(args...) }
func Infof(format string, args ...interface{})  { globalLogger.entry.Infof(format, args...) }
func Warn(args ...interface{})                  { globalLogger.entry.Warn(args...) }
func Warnf(format string, args ...interface{})  { globalLogger.entry.Warnf(format, args...) }
func Error(args ...interface{})                 { globalLogger.entry.Error(args...) }
func Errorf(format string, args ...interface{}) { globalLogger.entry.Errorf(format, args...) }

func WithField(key string, value interface{}) *Entry {
	return globalLogger.entry.WithField(key, value)
}

func WithFields(fields Fields) *Entry {
	return globalLogger.entry.WithFields(fields)
}

// SetLevel sets the global logger's level, e.g. from a --log-level flag.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	origLogger.SetLevel(lvl)
	return nil
}

func SetOutput(w io.Writer) { origLogger.SetOutput(w) }

// SetJSONFormatter switches the global logger to structured JSON output.
func SetJSONFormatter() { origLogger.SetFormatter(&logrus.JSONFormatter{}) }

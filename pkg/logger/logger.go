package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timestampFormat = "2006-01-02 15:04:05"

// Logger wraps logrus with additional functionality
type Logger struct {
	*logrus.Logger
	fields logrus.Fields
}

// Options controls how a Logger is built.
type Options struct {
	Level      string
	Format     string // json, text
	File       string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// NewLogger creates a new text logger writing to stdout and, when logFile is
// set, to a rotated file.
func NewLogger(level, logFile string) *Logger {
	return New(Options{
		Level:      level,
		File:       logFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})
}

// New creates a logger from options
func New(opts Options) *Logger {
	log := logrus.New()

	// Set log level
	logLevel, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	l := &Logger{
		Logger: log,
		fields: make(logrus.Fields),
	}
	l.SetFormatter(opts.Format)

	// Set output
	if opts.File != "" {
		logDir := filepath.Dir(opts.File)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			fmt.Printf("Failed to create log directory: %v\n", err)
		} else {
			// Use lumberjack for log rotation
			fileLogger := &lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    opts.MaxSize,
				MaxBackups: opts.MaxBackups,
				MaxAge:     opts.MaxAge,
				Compress:   opts.Compress,
			}

			// Write to both file and stdout
			log.SetOutput(io.MultiWriter(os.Stdout, fileLogger))
		}
	}

	return l
}

// NewDiscard returns a logger that drops everything. Handy in tests.
func NewDiscard() *Logger {
	l := NewLogger("panic", "")
	l.Logger.SetOutput(io.Discard)
	return l
}

// WithField adds a field to the logger context
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// WithFields adds multiple fields to the logger context
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	newFields := make(logrus.Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	return &Logger{
		Logger: l.Logger,
		fields: newFields,
	}
}

// WithComponent adds a component field to the logger
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.entry(msg, args).Debug(format(msg, args))
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.entry(msg, args).Info(format(msg, args))
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, args ...interface{}) {
	l.entry(msg, args).Warning(format(msg, args))
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...interface{}) {
	l.entry(msg, args).Error(format(msg, args))
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.entry(msg, args).Fatal(format(msg, args))
}

// entry builds the logrus entry. Arguments are either printf operands (when
// msg contains a verb) or alternating key/value pairs.
func (l *Logger) entry(msg string, args []interface{}) *logrus.Entry {
	entry := l.Logger.WithFields(l.fields)
	if len(args) == 0 || isFormat(msg) || len(args)%2 != 0 {
		return entry
	}

	fields := make(logrus.Fields, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			fields[key] = args[i+1]
		}
	}
	return entry.WithFields(fields)
}

func format(msg string, args []interface{}) string {
	if len(args) > 0 && (isFormat(msg) || len(args)%2 != 0) {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

func isFormat(msg string) bool {
	return strings.Contains(msg, "%")
}

// Writer returns an io.Writer for the logger
func (l *Logger) Writer() io.Writer {
	return l.Logger.Writer()
}

// AuditLogger logs audit events
func (l *Logger) AuditLogger(action, username, resource, details string) {
	l.WithFields(map[string]interface{}{
		"event_type": "audit",
		"action":     action,
		"username":   username,
		"resource":   resource,
		"details":    details,
		"timestamp":  time.Now().Unix(),
	}).Info("Audit event logged")
}

// StructuredError logs a structured error with context
func (l *Logger) StructuredError(err error, context map[string]interface{}) {
	fields := map[string]interface{}{
		"error":     err.Error(),
		"timestamp": time.Now().Unix(),
	}

	// Merge context fields
	for k, v := range context {
		fields[k] = v
	}

	l.WithFields(fields).Error("Structured error logged")
}

// SetLogLevel dynamically sets the log level
func (l *Logger) SetLogLevel(level string) error {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.Logger.SetLevel(logLevel)
	return nil
}

// SetFormatter sets the log formatter
func (l *Logger) SetFormatter(format string) {
	switch format {
	case "json":
		l.Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
		})
	default:
		l.Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
	}
}

package logger

import "context"

// Entry carries metric fields to attach at the log site, merged with
// whatever tracing fields the context already holds.
type Entry struct {
	fields Fields
}

// With starts an Entry with the given fields.
func With(fields Fields) *Entry {
	return &Entry{fields: fields}
}

// Info logs at Info level with the entry and context fields.
func (e *Entry) Info(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).WithFields(e.fields).Infof(format, args...)
}

// Warn logs at Warn level with the entry and context fields.
func (e *Entry) Warn(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).WithFields(e.fields).Warnf(format, args...)
}

// Error logs at Error level with the entry and context fields.
func (e *Entry) Error(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).WithFields(e.fields).Errorf(format, args...)
}

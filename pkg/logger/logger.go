package logger

import "context"

// Field is a structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
}

// Nop discards every entry.
type Nop struct{}

func (Nop) Debug(context.Context, string, ...Field) {}
func (Nop) Info(context.Context, string, ...Field)  {}
func (Nop) Warn(context.Context, string, ...Field)  {}
func (Nop) Error(context.Context, string, ...Field) {}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"log"
	"os"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// The exporter reports progress (target, chain length, written files)
// through this interface so output can be redirected or suppressed.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// DiscardLogger implements Logger by dropping every message.
// It's used in tests and anywhere progress output is unwanted.
type DiscardLogger struct{}

// NewDiscardLogger creates a logger that discards all output.
func NewDiscardLogger() *DiscardLogger { return &DiscardLogger{} }

// Printf discards the message.
func (d *DiscardLogger) Printf(format string, v ...any) {}

// Println discards the message.
func (d *DiscardLogger) Println(v ...any) {}

// SetOutput is a no-op for the discard logger.
func (d *DiscardLogger) SetOutput(w io.Writer) {}

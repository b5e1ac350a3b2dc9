// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/internal/helper/jsonrpc"
)

// Log levels written in the "level" field of [MCP] log notifications.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
const (
	LevelInfo  = "info"
	LevelError = "error"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// This interface supports both CLI and [MCP] server modes, allowing seamless
// switching between human-readable output and structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints an informational message.
	Printf(format string, v ...any)
	// Println prints an informational message with a newline.
	Println(v ...any)
	// Info logs an informational message with optional structured data.
	Info(message string, data map[string]any)
	// Error logs an error message with optional structured data.
	Error(message string, data map[string]any)
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

// Info prints the message followed by the data as sorted key=value pairs.
func (c *CLILogger) Info(message string, data map[string]any) {
	c.logger.Println(message + formatFields(data))
}

// Error prints the message with an "Error: " prefix followed by the data.
func (c *CLILogger) Error(message string, data map[string]any) {
	c.logger.Println("Error: " + message + formatFields(data))
}

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// formatFields renders data as " key=value" pairs in key order.
func formatFields(data map[string]any) string {
	if len(data) == 0 {
		return ""
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, data[k])
	}
	return b.String()
}

// MCPLogger implements Logger for [MCP] server mode.
// It writes each message as a JSON-RPC "log" notification on its own line to a
// side channel (stderr by default), never to the stdout protocol stream.
//
// MCPLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type MCPLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewMCPLogger creates a new [MCP] logger.
// A nil writer discards output. Set silent=true to suppress all messages.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewMCPLogger(writer io.Writer, silent bool) *MCPLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &MCPLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs an informational message.
func (m *MCPLogger) Printf(format string, v ...any) {
	m.write(LevelInfo, fmt.Sprintf(format, v...), nil)
}

// Println logs an informational message.
func (m *MCPLogger) Println(v ...any) {
	m.write(LevelInfo, fmt.Sprint(v...), nil)
}

// Info logs an informational message with structured data.
func (m *MCPLogger) Info(message string, data map[string]any) {
	m.write(LevelInfo, message, data)
}

// Error logs an error message with structured data.
func (m *MCPLogger) Error(message string, data map[string]any) {
	m.write(LevelError, message, data)
}

// write encodes one notification line. Encoding and write errors are dropped:
// the diagnostic channel must never fail a tool call.
func (m *MCPLogger) write(level, message string, data map[string]any) {
	if m.silent {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_ = jsonrpc.WriteLine(m.writer, jsonrpc.NewLogNotification(level, message, data))
}

// SetOutput sets the output destination for the MCP logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (m *MCPLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}

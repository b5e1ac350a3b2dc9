// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/mark3labs/mcp-go/mcp"
)

// MethodLog is the notification method used for diagnostic log lines.
const MethodLog = "log"

// Notification is a JSON-RPC 2.0 notification (a request without an id).
type Notification struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// LogParams holds the params of a "log" notification.
type LogParams struct {
	Level   string         `json:"level"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// ErrorDetail is the error member of a JSON-RPC 2.0 error response.
type ErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorMessage is a JSON-RPC 2.0 error object that is not bound to a request id.
// It is used to report fatal startup failures before the server accepts calls.
type ErrorMessage struct {
	JSONRPC string      `json:"jsonrpc"`
	Error   ErrorDetail `json:"error"`
}

// NewLogNotification builds a "log" notification for the given level and message.
func NewLogNotification(level, message string, data map[string]any) Notification {
	return Notification{
		JSONRPC: mcp.JSONRPC_VERSION,
		Method:  MethodLog,
		Params: LogParams{
			Level:   level,
			Message: message,
			Data:    data,
		},
	}
}

// NewInternalError builds an error object with the JSON-RPC internal error code (-32603).
func NewInternalError(message string, data any) ErrorMessage {
	return ErrorMessage{
		JSONRPC: mcp.JSONRPC_VERSION,
		Error: ErrorDetail{
			Code:    mcp.INTERNAL_ERROR,
			Message: message,
			Data:    data,
		},
	}
}

// Marshal encodes a JSON-RPC message.
//
// Parameters:
//   - v: Notification, ErrorMessage or any JSON-serializable value
//
// Returns:
//   - []byte: Encoded JSON without trailing newline
//   - error: Error if encoding fails
func Marshal(v any) ([]byte, error) {
	data, err := sonic.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON-RPC message: %w", err)
	}
	return data, nil
}

// WriteLine encodes v and writes it to w followed by a newline,
// producing one message per line as stdio MCP transports expect.
func WriteLine(w io.Writer, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// UnmarshalFromMap converts a map/any to a struct via JSON round-trip.
//
// It facilitates converting a generic map (e.g., tool call arguments)
// into a strongly-typed struct. Type mismatches surface as errors.
//
// Parameters:
//   - src: Source map or value to convert
//   - dest: Pointer to destination struct
//
// Returns:
//   - error: Error if marshaling or unmarshaling fails
func UnmarshalFromMap(src any, dest any) error {
	data, err := sonic.Marshal(src)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(data, dest)
}

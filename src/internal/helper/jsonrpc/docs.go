// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc provides helper functions for [JSON-RPC 2.0] message handling.
// It encodes the notification and error objects written to the diagnostic
// channel (stderr) of the MCP server, and converts generic argument maps into
// typed structs. Encoding is done with [sonic].
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
// [sonic]: https://github.com/bytedance/sonic
package jsonrpc

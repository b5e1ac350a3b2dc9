// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver serves cloud cost summaries over the Model Context
// Protocol ([MCP]).
//
// The server exposes one tool, get-cost, which re-reads the cost report on
// every call, filters it by vendor and month, and returns the text rendered
// by the internal cost package. Resources describe the report format, its
// JSON schema, the configuration template, version metadata and runtime status.
// A cost-review prompt guides agents through a spend review.
//
// Servers are assembled with [ServerBuilder] and started from the Cobra root
// command built by [CLIFramework]. Serving requires the CONFIG environment
// variable to carry a license; failures surface as [*ConfigError], which
// [ReportFatal] writes as a JSON-RPC error line.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-friendly process helpers used by the CLI.
//
// The only helper today is [GetExecutableName], which derives the command
// name shown in cobra usage lines from os.Args[0]:
//
//   - Linux/macOS: "/usr/local/bin/cloud-cost-mcp" → "cloud-cost-mcp"
//   - Windows: "C:\tools\cloud-cost-mcp.exe" → "cloud-cost-mcp"
//   - Fallback: empty args → [FallbackName]
//
// Example:
//
//	rootCmd := &cobra.Command{
//	    Use:   posix.GetExecutableName(),
//	    Short: "Cloud cost MCP server",
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates embeds the markdown files used by the MCP server: the
// server instructions template, the CLI help template, the cost-review prompt
// template and the cost report format documentation.
//
// Files are reached through [MagicEmbed], which implements [EmbedFS]:
//
//	import "github.com/H0llyW00dzZ/cloud-cost-mcp/src/mcp-server/templates"
//
//	entries, err := templates.MagicEmbed.ReadDir(".")
//	if err != nil {
//		return fmt.Errorf("failed to list templates: %w", err)
//	}
package templates

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PromptCostReview is the name of the guided cost review prompt.
const PromptCostReview = "cost-review"

// createPrompts creates and returns all MCP prompt definitions with their handlers.
func createPrompts(fsys templates.EmbedFS) []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt(PromptCostReview,
				mcp.WithPromptDescription("Review cloud spend per vendor and month using get-cost"),
				mcp.WithArgument("vendors",
					mcp.ArgumentDescription("Comma-separated vendor names (default: all vendors)"),
				),
				mcp.WithArgument("months",
					mcp.ArgumentDescription("Comma-separated months in YYYY-MM format (default: all months)"),
				),
			),
			Handler: newCostReviewPromptHandler(fsys),
		},
	}
}

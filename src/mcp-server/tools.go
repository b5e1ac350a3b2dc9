// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names and roles.
const (
	ToolGetCost    = "get-cost"
	roleCostQuery  = "costQuery"
	getCostSummary = "Get cloud cost summary for multiple vendors and months"
)

// toolCatalog returns the tool specifications without handlers. It is enough
// to render instructions before any configuration has been loaded.
func toolCatalog() []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool(ToolGetCost,
				mcp.WithDescription(getCostSummary),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithArray("vendors",
					mcp.Description("List of cloud vendor names (e.g. ['AWS', 'Azure'])"),
					mcp.WithStringItems(),
				),
				mcp.WithArray("months",
					mcp.Description("List of months in YYYY-MM format (e.g. ['2024-04', '2024-05'])"),
					mcp.WithStringItems(),
				),
			),
			Role: roleCostQuery,
		},
	}
}

// createTools binds handlers from h to the tool catalog.
func createTools(h *CostQueryHandler) []ToolDefinition {
	tools := toolCatalog()
	for i := range tools {
		if tools[i].Role == roleCostQuery {
			tools[i].Handler = h.Handle
		}
	}
	return tools
}

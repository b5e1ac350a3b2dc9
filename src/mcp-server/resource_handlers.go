// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/internal/cost"
	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/mcp-server/templates"
	"github.com/bytedance/sonic"
	"github.com/mark3labs/mcp-go/mcp"
)

// marshalIndent encodes resource documents with stable key order.
func marshalIndent(v any) ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(v, "", "  ")
}

// handleConfigResource returns an example CONFIG value and settings file.
// The license is a placeholder; it is never read from a settings file.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	example := map[string]any{
		"env": map[string]any{
			EnvConfig: map[string]any{
				"license":  "<license-key>",
				"dataFile": cost.DefaultPath,
			},
			EnvConfigFile: "settings.yaml",
		},
		"settings": map[string]any{
			"dataFile": cost.DefaultPath,
			"log": map[string]any{
				"silent": false,
			},
		},
	}

	jsonData, err := marshalIndent(example)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      URIConfigTemplate,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleVersionResource returns server metadata from the cache populated by
// ServerBuilder.Build.
func (c *serverCache) handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonData, err := marshalIndent(c.snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      URIVersion,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

func handleSchemaResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      URICostReportSchema,
			MIMEType: "application/schema+json",
			Text:     string(cost.Schema()),
		},
	}, nil
}

// newFormatDocsHandler serves the cost report format documentation from fsys.
func newFormatDocsHandler(fsys templates.EmbedFS) ResourceHandler {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		content, err := fsys.ReadFile(templates.CostReportFormatFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read cost report format: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      URICostReportFormat,
				MIMEType: "text/markdown",
				Text:     string(content),
			},
		}, nil
	}
}

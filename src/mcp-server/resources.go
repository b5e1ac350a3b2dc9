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

// Resource URIs.
const (
	URIConfigTemplate   = "config://template"
	URIVersion          = "info://version"
	URICostReportSchema = "schema://cost-report"
	URICostReportFormat = "docs://cost-report-format"
)

// createResources returns the server's resources. The version and status
// resources read cache; documentation is read from fsys.
func createResources(cache *serverCache, fsys templates.EmbedFS) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(URIConfigTemplate, "Configuration Template",
				mcp.WithResourceDescription("Example CONFIG environment value and settings file for the cloud cost server"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(URIVersion, "Version Information",
				mcp.WithResourceDescription("Server name, version and registered capabilities"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: cache.handleVersionResource,
		},
		{
			Resource: mcp.NewResource(URIServerStatus, "Server Status",
				mcp.WithResourceDescription("Server health with memory, GC and runtime statistics"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: cache.handleStatusResource,
		},
		{
			Resource: mcp.NewResource(URICostReportSchema, "Cost Report Schema",
				mcp.WithResourceDescription("JSON schema the cost report file must satisfy"),
				mcp.WithMIMEType("application/schema+json"),
			),
			Handler: handleSchemaResource,
		},
		{
			Resource: mcp.NewResource(URICostReportFormat, "Cost Report Format",
				mcp.WithResourceDescription("Layout of the cost report file and of get-cost output"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: newFormatDocsHandler(fsys),
		},
	}
}

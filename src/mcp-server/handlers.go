// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/server"
)

// instructionData holds the data used to populate the MCP server instructions template.
type instructionData struct {
	Tools     []toolInfo
	ToolRoles map[string]string // role -> tool name
}

// toolInfo represents information about an MCP tool for template rendering.
type toolInfo struct {
	Name        string
	Description string
}

// loadInstructions renders the instructions template with the given tools.
// Handlers are not required; only names, descriptions and roles are read.
//
// Returns:
//   - string: The rendered instruction text
//   - error: If the embedded file cannot be read or the template fails
func loadInstructions(fsys templates.EmbedFS, tools []ToolDefinition) (string, error) {
	templateBytes, err := fsys.ReadFile(templates.InstructionsFile)
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	data := instructionData{
		Tools:     make([]toolInfo, 0, len(tools)),
		ToolRoles: make(map[string]string, len(tools)),
	}
	for _, tool := range tools {
		data.Tools = append(data.Tools, toolInfo{
			Name:        tool.Tool.Name,
			Description: tool.Tool.Description,
		})
		if tool.Role != "" {
			data.ToolRoles[tool.Role] = tool.Tool.Name
		}
	}

	tmpl, err := template.New("instructions").Option("missingkey=error").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}

	return buf.String(), nil
}

// serverCache records user-facing metadata about registered capabilities.
// It is filled once by ServerBuilder.Build and read by the info://version handler.
type serverCache struct {
	mu        sync.RWMutex
	version   string
	dataFile  string
	tools     []map[string]any
	resources []map[string]any
	prompts   []map[string]any
}

func newServerCache() *serverCache { return &serverCache{} }

// populate replaces the cached metadata with the builder's dependencies.
func (c *serverCache) populate(deps ServerDependencies) {
	tools := make([]map[string]any, 0, len(deps.Tools))
	for _, def := range deps.Tools {
		tools = append(tools, map[string]any{
			"name":        def.Tool.Name,
			"description": def.Tool.Description,
		})
	}

	resources := make([]map[string]any, 0, len(deps.Resources))
	for _, def := range deps.Resources {
		resources = append(resources, resourceMetadata(def))
	}

	prompts := make([]map[string]any, 0, len(deps.Prompts))
	for _, def := range deps.Prompts {
		prompts = append(prompts, promptMetadata(def))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.version = deps.Version
	c.dataFile = ""
	if deps.Config != nil {
		c.dataFile = deps.Config.DataFile
	}
	c.tools = tools
	c.resources = resources
	c.prompts = prompts
}

// snapshot returns the version info document served by info://version.
func (c *serverCache) snapshot() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info := map[string]any{
		"name":    ServerName,
		"version": c.version,
		"type":    "MCP Server",
		"capabilities": map[string]any{
			"tools":     c.tools,
			"resources": c.resources,
			"prompts":   c.prompts,
		},
	}
	if c.dataFile != "" {
		info["dataFile"] = c.dataFile
	}
	return info
}

func resourceMetadata(def server.ServerResource) map[string]any {
	return map[string]any{
		"uri":         def.Resource.URI,
		"name":        def.Resource.Name,
		"description": def.Resource.Description,
		"mimeType":    def.Resource.MIMEType,
	}
}

func promptMetadata(def server.ServerPrompt) map[string]any {
	metadata := map[string]any{
		"name":        def.Prompt.Name,
		"description": def.Prompt.Description,
	}
	if len(def.Prompt.Arguments) > 0 {
		args := make([]map[string]any, 0, len(def.Prompt.Arguments))
		for _, arg := range def.Prompt.Arguments {
			args = append(args, map[string]any{
				"name":        arg.Name,
				"description": arg.Description,
				"required":    arg.Required,
			})
		}
		metadata["arguments"] = args
	}
	return metadata
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerName is the implementation name announced to MCP clients.
const ServerName = "cloud-cost"

// ToolHandler defines the signature for tool handlers that matches [MCP] server expectations.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ResourceHandler defines the signature for resource read handlers.
type ResourceHandler = func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)

// PromptHandler defines the signature for prompt handlers.
type PromptHandler = func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error)

// ToolDefinition pairs an MCP tool specification with its implementation.
//
// Fields:
//   - Tool: The MCP tool definition containing name, description, and input schema
//   - Handler: The function that implements the tool's logic
//   - Role: Stable key used by the instructions template to refer to the tool
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ServerDependencies holds everything needed to create the MCP server.
//
// Fields:
//   - Config: Resolved configuration (license already checked)
//   - Embed: Template filesystem for instructions, prompts and documentation
//   - Version: Server version string
//   - Tools: Tool definitions with bound handlers
//   - Resources: Resources served by the server
//   - Prompts: Prompts served by the server
//   - Instructions: Text sent to clients during initialization
//   - PopulateCache: Whether Build fills the metadata cache behind info://version
type ServerDependencies struct {
	Config        *Config
	Embed         templates.EmbedFS
	Version       string
	Tools         []ToolDefinition
	Resources     []server.ServerResource
	Prompts       []server.ServerPrompt
	Instructions  string
	PopulateCache bool
}

// ServerBuilder helps construct the [MCP] server with proper dependencies using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(config).
//	    WithVersion("1.0.0").
//	    WithTools(createTools(handler)...).
//	    WithDefaultResources().
//	    WithDefaultPrompts().
//	    WithPopulate().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct {
	deps  ServerDependencies
	cache *serverCache
}

// NewServerBuilder creates a builder with the embedded templates and an
// empty metadata cache.
func NewServerBuilder() *ServerBuilder {
	return &ServerBuilder{
		deps:  ServerDependencies{Embed: templates.MagicEmbed},
		cache: newServerCache(),
	}
}

// WithConfig sets the server configuration.
func (b *ServerBuilder) WithConfig(config *Config) *ServerBuilder {
	b.deps.Config = config
	return b
}

// WithEmbed overrides the template filesystem.
func (b *ServerBuilder) WithEmbed(embed templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = embed
	return b
}

// WithVersion sets the version reported to clients and by info://version.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithTools adds tool definitions. Tools without a handler are rejected by Build.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithResources adds resources to the server.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithDefaultResources adds config://template, info://version,
// status://server-status, schema://cost-report and docs://cost-report-format. The version resource
// reads the builder's metadata cache, so pair it with WithPopulate. Call
// WithEmbed first when overriding the template filesystem.
func (b *ServerBuilder) WithDefaultResources() *ServerBuilder {
	return b.WithResources(createResources(b.cache, b.deps.Embed)...)
}

// WithPrompts adds prompts to the server.
func (b *ServerBuilder) WithPrompts(prompts ...server.ServerPrompt) *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, prompts...)
	return b
}

// WithDefaultPrompts adds the cost-review prompt rendered from the current
// template filesystem.
func (b *ServerBuilder) WithDefaultPrompts() *ServerBuilder {
	return b.WithPrompts(createPrompts(b.deps.Embed)...)
}

// WithInstructions sets the instructions returned in the initialize result.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithPopulate makes Build record tool, resource and prompt metadata for info://version.
func (b *ServerBuilder) WithPopulate() *ServerBuilder {
	b.deps.PopulateCache = true
	return b
}

// Build creates the [MCP] server with all configured dependencies.
//
// Returns:
//   - A pointer to the configured MCPServer instance
//   - An error if a tool has no handler
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	for _, tool := range b.deps.Tools {
		if tool.Handler == nil {
			return nil, fmt.Errorf("tool %q has no handler", tool.Tool.Name)
		}
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}

	s := server.NewMCPServer(ServerName, b.deps.Version, opts...)

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, tool.Handler)
	}

	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	for _, prompt := range b.deps.Prompts {
		s.AddPrompt(prompt.Prompt, prompt.Handler)
	}

	if b.deps.PopulateCache {
		b.cache.populate(b.deps)
	}

	return s, nil
}

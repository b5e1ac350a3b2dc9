// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"errors"
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/version"
)

// GetVersion returns the default server version from the version package.
func GetVersion() string {
	return version.Version
}

// Run builds the root command and executes it with the process arguments.
//
// Without a subcommand the MCP server is started on stdio, which requires a
// valid CONFIG environment value. The query and check subcommands work on
// the local cost report without serving.
//
// Parameters:
//   - version: Version string reported to clients and by --version
//   - configFile: Default settings file path; --config overrides it
//
// Returns:
//   - error: A *ConfigError for fatal configuration problems, nil after a
//     signal-driven shutdown, or any other startup or runtime error.
//     Pass it to ReportFatal.
func Run(version, configFile string) error {
	instructions, err := loadInstructions(templates.MagicEmbed, toolCatalog())
	if err != nil {
		return fmt.Errorf("failed to load instructions: %w", err)
	}

	cf := NewCLIFramework(configFile, ServerDependencies{
		Embed:         templates.MagicEmbed,
		Version:       version,
		Instructions:  instructions,
		PopulateCache: true,
	})

	return cf.BuildRootCommand().Execute()
}

// ReportFatal writes err to w. Configuration errors become a single JSON-RPC
// error line with code -32603; other errors are written as plain text.
func ReportFatal(w io.Writer, err error) {
	if err == nil {
		return
	}

	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		if werr := jsonrpc.WriteLine(w, jsonrpc.NewInternalError(cfgErr.Message, cfgErr.Data)); werr == nil {
			return
		}
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

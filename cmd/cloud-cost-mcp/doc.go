// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// cloud-cost-mcp is a Model Context Protocol (MCP) server that answers
// questions about cloud spend recorded in a local JSON cost report.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/cloud-cost-mcp/cmd/cloud-cost-mcp@latest
//
// # Usage
//
//	cloud-cost-mcp [FLAGS]
//	cloud-cost-mcp query [--vendor NAME]... [--month YYYY-MM]... [--table]
//	cloud-cost-mcp check
//
// # Flags
//
//	--config        Path to a settings file (JSON, YAML or TOML)
//	--instructions  Print the instructions sent to MCP clients
//	--help          Show help information
//	--version       Show version information
//
// # Environment Variables
//
//	CONFIG                JSON object with "license" (required to serve) and optional "dataFile"
//	MCP_COST_CONFIG_FILE  Path to a settings file (alternative to --config flag)
//
// Without CONFIG, or with invalid JSON or no license, the server writes one
// JSON-RPC error line (code -32603) to stderr and exits with status 1.
//
// # MCP Tools
//
//   - get-cost: Cost entries filtered by optional vendors and months
//
// # MCP Resources
//
//   - config://template: Example CONFIG value and settings file
//   - info://version: Version and capabilities info
//   - status://server-status: Current server health status
//   - schema://cost-report: JSON schema of the cost report
//   - docs://cost-report-format: Cost report and output format documentation
//
// # MCP Prompts
//
//   - cost-review: Guided spend review for selected vendors and months
//
// # Examples
//
// Start the MCP server:
//
//	CONFIG='{"license":"KEY","dataFile":"data/cost.json"}' cloud-cost-mcp
//
// Print April totals for AWS without starting the server:
//
//	cloud-cost-mcp query --vendor AWS --month 2024-04 --table
package main

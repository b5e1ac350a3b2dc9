// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/internal/cost"
	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/logger"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"
)

// sampleReport keeps vendors out of alphabetical order so order checks mean something.
const sampleReport = `{
  "Data": {
    "GCP": {
      "2024-05": [
        {"date": "2024-05-02", "cost": 7.25, "accountId": "G1", "productName": "Compute Engine", "regionName": "europe-west1"}
      ]
    },
    "AWS": {
      "2024-04": [
        {"date": "2024-04-01", "cost": 12.5, "accountId": "A1", "productName": "EC2", "regionName": "us-east-1"}
      ],
      "2024-05": []
    }
  }
}`

const sampleAWSApril = "Vendor: AWS\n" +
	"  Month: 2024-04\n" +
	"    Date: 2024-04-01\n" +
	"    Cost: $12.5 USD\n" +
	"    Account ID: A1\n" +
	"    Product Name: EC2\n" +
	"    Region Name: us-east-1\n" +
	"\n" +
	"\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeReport(t *testing.T, content string) string {
	t.Helper()
	return writeFile(t, "cost.json", content)
}

func quietLogger() logger.Logger {
	return logger.NewMCPLogger(io.Discard, true)
}

func newTestHandler(path string, log logger.Logger) *CostQueryHandler {
	return NewCostQueryHandler(cost.NewLoader(path, log))
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	var sb strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}

func resourceText(t *testing.T, contents []mcp.ResourceContents) mcp.TextResourceContents {
	t.Helper()
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok, "expected TextResourceContents, got %T", contents[0])
	return text
}

// startInProcessClient connects and initializes a client against a built server.
func startInProcessClient(t *testing.T, s *server.MCPServer) (*client.Client, *mcp.InitializeResult) {
	t.Helper()
	c, err := client.NewInProcessClient(s)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Start(ctx))

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "cost-test", Version: "1.0.0"}
	res, err := c.Initialize(ctx, initReq)
	require.NoError(t, err)
	return c, res
}

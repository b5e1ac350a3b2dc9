// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/internal/cost"
	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/internal/helper/jsonrpc"
	"github.com/mark3labs/mcp-go/mcp"
)

// CostQueryHandler serves get-cost calls. It is built once at startup and
// holds no mutable state, so one instance serves concurrent calls.
type CostQueryHandler struct {
	loader *cost.Loader
}

// NewCostQueryHandler returns a handler reading the report through loader.
func NewCostQueryHandler(loader *cost.Loader) *CostQueryHandler {
	return &CostQueryHandler{loader: loader}
}

// costQueryArgs mirrors the get-cost input schema.
type costQueryArgs struct {
	Vendors []string `json:"vendors"`
	Months  []string `json:"months"`
}

// Handle re-reads the cost report and renders the filtered summary.
//
// A report that cannot be loaded yields the fixed failure text as a normal
// result; the cause goes to the diagnostic log. Arguments of the wrong
// shape yield a tool error result.
func (h *CostQueryHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args costQueryArgs
	if err := jsonrpc.UnmarshalFromMap(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid get-cost arguments: %v", err)), nil
	}

	report := h.loader.Fetch(ctx)
	text := cost.Format(report, cost.Query{Vendors: args.Vendors, Months: args.Months})

	return mcp.NewToolResultText(text), nil
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/mcp-server/templates"
	"github.com/bytedance/sonic"
	"github.com/mark3labs/mcp-go/mcp"
)

// costReviewData feeds the cost-review prompt template.
type costReviewData struct {
	ToolName    string
	Vendors     string
	Months      string
	VendorsJSON string
	MonthsJSON  string
}

// splitList parses a comma-separated prompt argument, dropping blanks.
func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func newCostReviewData(args map[string]string) (costReviewData, error) {
	data := costReviewData{ToolName: ToolGetCost}

	vendors := splitList(args["vendors"])
	months := splitList(args["months"])

	if len(vendors) > 0 {
		encoded, err := sonic.MarshalString(vendors)
		if err != nil {
			return data, err
		}
		data.Vendors = strings.Join(vendors, ", ")
		data.VendorsJSON = encoded
	}
	if len(months) > 0 {
		encoded, err := sonic.MarshalString(months)
		if err != nil {
			return data, err
		}
		data.Months = strings.Join(months, ", ")
		data.MonthsJSON = encoded
	}
	return data, nil
}

// newCostReviewPromptHandler renders the cost-review template from fsys.
func newCostReviewPromptHandler(fsys templates.EmbedFS) PromptHandler {
	return func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		templateBytes, err := fsys.ReadFile(templates.CostReviewPromptFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load cost review prompt: %w", err)
		}

		tmpl, err := template.New(PromptCostReview).Parse(string(templateBytes))
		if err != nil {
			return nil, fmt.Errorf("failed to parse cost review prompt: %w", err)
		}

		data, err := newCostReviewData(request.Params.Arguments)
		if err != nil {
			return nil, fmt.Errorf("failed to encode prompt arguments: %w", err)
		}

		buf := gc.Default.Get()
		defer func() {
			buf.Reset()
			gc.Default.Put(buf)
		}()

		if err := tmpl.Execute(buf, data); err != nil {
			return nil, fmt.Errorf("failed to execute cost review prompt: %w", err)
		}

		messages := []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(strings.TrimSpace(buf.String()))),
		}

		return mcp.NewGetPromptResult("Cloud cost review", messages), nil
	}
}

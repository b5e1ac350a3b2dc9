// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.md
var embeddedFS embed.FS

// Embedded file names.
const (
	// InstructionsFile is the text/template rendered into the MCP server instructions.
	InstructionsFile = "cost_instructions.md"
	// CLIHelpFile is the text/template rendered into the root command's Long and Example text.
	CLIHelpFile = "cli_help.md"
	// CostReportFormatFile documents the cost report layout. Served as docs://cost-report-format.
	CostReportFormatFile = "cost-report-format.md"
	// CostReviewPromptFile is the text/template behind the cost-review prompt.
	CostReviewPromptFile = "cost_review_prompt.md"
)

// EmbedFS abstracts [embed.FS] so callers and tests can substitute their own
// template source.
type EmbedFS interface {
	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)

	// ReadDir reads the named directory and returns a list of directory entries.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Open opens the named file for reading.
	Open(name string) (fs.File, error)
}

type embedFS struct{ fs embed.FS }

func (e *embedFS) ReadFile(name string) ([]byte, error) { return e.fs.ReadFile(name) }

func (e *embedFS) ReadDir(name string) ([]fs.DirEntry, error) { return e.fs.ReadDir(name) }

func (e *embedFS) Open(name string) (fs.File, error) { return e.fs.Open(name) }

// MagicEmbed is the embedded filesystem holding the server's markdown
// templates and documentation.
//
// Example:
//
//	content, err := templates.MagicEmbed.ReadFile(templates.CostReportFormatFile)
//	if err != nil {
//		return fmt.Errorf("failed to read cost report format: %w", err)
//	}
var MagicEmbed EmbedFS = &embedFS{fs: embeddedFS}

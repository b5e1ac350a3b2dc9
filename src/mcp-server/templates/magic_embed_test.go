// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"io"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allFiles = []string{
	InstructionsFile,
	CLIHelpFile,
	CostReportFormatFile,
	CostReviewPromptFile,
}

func TestMagicEmbed_ReadFile(t *testing.T) {
	for _, name := range allFiles {
		t.Run(name, func(t *testing.T) {
			data, err := MagicEmbed.ReadFile(name)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := MagicEmbed.ReadFile("non-existent.md")
		assert.Error(t, err)
	})

	t.Run("path escape", func(t *testing.T) {
		_, err := MagicEmbed.ReadFile("../invalid.md")
		assert.Error(t, err)
	})
}

func TestMagicEmbed_ReadDir(t *testing.T) {
	entries, err := MagicEmbed.ReadDir(".")
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		assert.False(t, entry.IsDir(), "unexpected directory %s", entry.Name())
		names = append(names, entry.Name())
	}
	assert.ElementsMatch(t, allFiles, names)

	_, err = MagicEmbed.ReadDir("non-existent")
	assert.Error(t, err)
}

func TestMagicEmbed_Open(t *testing.T) {
	f, err := MagicEmbed.Open(CostReportFormatFile)
	require.NoError(t, err)
	defer f.Close()

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, CostReportFormatFile, info.Name())

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Cost Report Format")
	assert.Contains(t, string(data), "Cost: $12.5 USD")
}

func TestTemplatesParse(t *testing.T) {
	for _, name := range []string{InstructionsFile, CLIHelpFile, CostReviewPromptFile} {
		t.Run(name, func(t *testing.T) {
			data, err := MagicEmbed.ReadFile(name)
			require.NoError(t, err)

			_, err = template.New(name).Parse(string(data))
			assert.NoError(t, err)
		})
	}
}

func TestCLIHelpHasExamplesSection(t *testing.T) {
	data, err := MagicEmbed.ReadFile(CLIHelpFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n## Examples\n")
}

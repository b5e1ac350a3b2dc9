// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cost

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/logger"
)

// DefaultPath is the report location used when none is configured.
// Relative paths resolve against the working directory.
const DefaultPath = "data/cost.json"

// Load reads, validates and decodes the cost report at path.
//
// Parameters:
//   - ctx: Checked before the file is opened
//   - path: Location of the report file
//
// Returns:
//   - *Report: The decoded report with vendors and months in file order
//   - error: A *SchemaError for shape violations, otherwise an error wrapping
//     ErrDataUnavailable (missing file, read failure, malformed JSON)
func Load(ctx context.Context, path string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	defer f.Close()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()         // Reset the buffer to prevent data leaks
		gc.Default.Put(buf) // Return the buffer to the pool for reuse
	}()

	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrDataUnavailable, path, err)
	}

	if err := Validate(path, buf.Bytes()); err != nil {
		return nil, err
	}

	report, err := decodeReport(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrDataUnavailable, path, err)
	}

	return report, nil
}

// Loader fetches a report for a single query and reports failures on the
// diagnostic channel instead of returning them.
type Loader struct {
	path string
	log  logger.Logger
}

// NewLoader creates a loader for path. An empty path selects [DefaultPath];
// a nil log discards diagnostics.
func NewLoader(path string, log logger.Logger) *Loader {
	if path == "" {
		path = DefaultPath
	}
	if log == nil {
		log = logger.NewMCPLogger(nil, true)
	}
	return &Loader{path: path, log: log}
}

// Path returns the configured report location.
func (l *Loader) Path() string { return l.path }

// Fetch loads the report. It returns nil on any failure after logging the
// error together with the resolved file path, whether the file exists and the
// working directory. Failures are not retried.
func (l *Loader) Fetch(ctx context.Context) *Report {
	l.log.Info("Checking cost data file", l.fileInfo())

	report, err := Load(ctx, l.path)
	if err != nil {
		data := l.fileInfo()
		data["error"] = err.Error()
		l.log.Error("Error reading cost data from file", data)
		return nil
	}

	return report
}

// fileInfo collects the diagnostic fields describing the report location.
func (l *Loader) fileInfo() map[string]any {
	absPath, err := filepath.Abs(l.path)
	if err != nil {
		absPath = l.path
	}

	_, statErr := os.Stat(l.path)
	cwd, _ := os.Getwd()

	return map[string]any{
		"filePath":         absPath,
		"fileExists":       statErr == nil,
		"currentDirectory": cwd,
	}
}

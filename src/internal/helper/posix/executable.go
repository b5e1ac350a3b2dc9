// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// FallbackName is reported when os.Args carries no program name.
const FallbackName = "cloud-cost-mcp"

// GetExecutableName returns the base name of the running binary without a
// trailing ".exe", falling back to [FallbackName].
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return FallbackName
	}
	return executableName(os.Args[0])
}

// executableName reduces arg0 to its last path component. Both separators are
// honoured so a Windows path is handled on Unix and the other way round.
func executableName(arg0 string) string {
	parts := strings.FieldsFunc(arg0, func(r rune) bool {
		return r == '/' || r == '\\' || r == filepath.Separator
	})
	if len(parts) == 0 {
		return FallbackName
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" {
		return FallbackName
	}
	return name
}

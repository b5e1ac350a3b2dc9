// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cost

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDataUnavailable reports a cost report that could not be read or parsed.
// Every error returned by [Load] matches it with [errors.Is].
var ErrDataUnavailable = errors.New("cost data unavailable")

// SchemaError reports a well-formed JSON document that does not have the shape
// of a cost report, such as a missing "Data" object or an entry without "cost".
type SchemaError struct {
	// Path is the file the document was read from.
	Path string
	// Violations lists each failed constraint as "field: description".
	Violations []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("cost report %s does not match schema: %s", e.Path, strings.Join(e.Violations, "; "))
}

// Is makes schema errors match [ErrDataUnavailable].
func (e *SchemaError) Is(target error) bool { return target == ErrDataUnavailable }

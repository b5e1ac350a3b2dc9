// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cost

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed cost_report.schema.json
var reportSchema []byte

// compiledSchema compiles the embedded schema once per process.
var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(reportSchema))
})

// Schema returns a copy of the JSON Schema that cost report files must satisfy.
func Schema() []byte { return slices.Clone(reportSchema) }

// Validate checks doc against the cost report schema.
//
// Parameters:
//   - path: Source of the document, used in error messages
//   - doc: Raw JSON document
//
// Returns:
//   - error: nil when valid, a *SchemaError for shape violations, or an error
//     wrapping ErrDataUnavailable when doc is not valid JSON
func Validate(path string, doc []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("failed to compile cost report schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: malformed JSON in %s: %w", ErrDataUnavailable, path, err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		violations = append(violations, re.String())
	}
	return &SchemaError{Path: path, Violations: violations}
}

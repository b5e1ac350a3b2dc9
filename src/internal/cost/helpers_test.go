// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cost

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleReport has vendors and months deliberately out of alphabetical order
// so tests catch any accidental sorting.
const sampleReport = `{
  "Data": {
    "Azure": {
      "2024-05": [
        {"date": "2024-05-02", "cost": 40, "accountId": "Z9", "productName": "VM", "regionName": "westeurope"}
      ],
      "2024-04": []
    },
    "AWS": {
      "2024-06": null,
      "2024-04": [
        {"date": "2024-04-01", "cost": 12.5, "accountId": "A1", "productName": "EC2", "regionName": "us-east-1"},
        {"date": "2024-04-03", "cost": 0.1, "accountId": "A2", "productName": "S3", "regionName": "eu-west-1"}
      ]
    },
    "GCP": {}
  }
}`

// writeReport stores content in a fresh temporary file and returns its path.
func writeReport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cost.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// mustDecode parses content without schema validation.
func mustDecode(t *testing.T, content string) *Report {
	t.Helper()
	r, err := decodeReport([]byte(content))
	require.NoError(t, err)
	return r
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_PreservesFileOrder(t *testing.T) {
	r := mustDecode(t, sampleReport)

	assert.Equal(t, []string{"Azure", "AWS", "GCP"}, r.Vendors())
	assert.Equal(t, []string{"2024-05", "2024-04"}, r.Months("Azure"))
	assert.Equal(t, []string{"2024-06", "2024-04"}, r.Months("AWS"))
	assert.Empty(t, r.Months("GCP"))
	assert.Nil(t, r.Months("Oracle"))
}

func TestReport_DecodesEntries(t *testing.T) {
	r := mustDecode(t, sampleReport)

	aws, ok := r.Data.Get("AWS")
	require.True(t, ok)

	entries, ok := aws.Get("2024-04")
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{
		Date:        "2024-04-01",
		Cost:        12.5,
		AccountID:   "A1",
		ProductName: "EC2",
		RegionName:  "us-east-1",
	}, entries[0])

	empty, ok := aws.Get("2024-06")
	require.True(t, ok, "a null month is still present")
	assert.Nil(t, empty)
}

func TestReport_NilSafe(t *testing.T) {
	var r *Report
	assert.Nil(t, r.Vendors())
	assert.Nil(t, r.Months("AWS"))
	assert.Nil(t, (&Report{}).Vendors())
}

func TestNewDataset(t *testing.T) {
	ds := NewDataset()
	months := NewVendorMonths()
	months.Set("2024-01", []Entry{{Date: "2024-01-01", Cost: 1}})
	ds.Set("OCI", months)

	r := &Report{Data: ds}
	assert.Equal(t, []string{"OCI"}, r.Vendors())
	assert.Equal(t, []string{"2024-01"}, r.Months("OCI"))
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cost

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_AllVendorsAllMonths(t *testing.T) {
	want := "" +
		"Vendor: Azure\n" +
		"  Month: 2024-05\n" +
		"    Date: 2024-05-02\n" +
		"    Cost: $40 USD\n" +
		"    Account ID: Z9\n" +
		"    Product Name: VM\n" +
		"    Region Name: westeurope\n" +
		"\n" +
		"  Month: 2024-04\n" +
		"    No cost data available\n" +
		"\n" +
		"Vendor: AWS\n" +
		"  Month: 2024-06\n" +
		"    No cost data available\n" +
		"  Month: 2024-04\n" +
		"    Date: 2024-04-01\n" +
		"    Cost: $12.5 USD\n" +
		"    Account ID: A1\n" +
		"    Product Name: EC2\n" +
		"    Region Name: us-east-1\n" +
		"\n" +
		"    Date: 2024-04-03\n" +
		"    Cost: $0.1 USD\n" +
		"    Account ID: A2\n" +
		"    Product Name: S3\n" +
		"    Region Name: eu-west-1\n" +
		"\n" +
		"\n" +
		"Vendor: GCP\n" +
		"\n"

	assert.Equal(t, want, Format(mustDecode(t, sampleReport), Query{}))
}

func TestFormat_SpecExample(t *testing.T) {
	r := mustDecode(t, `{"Data": {"AWS": {"2024-04": [
		{"date": "2024-04-01", "cost": 12.5, "accountId": "A1", "productName": "EC2", "regionName": "us-east-1"}
	]}}}`)

	got := Format(r, Query{Vendors: []string{"AWS"}, Months: []string{"2024-04"}})
	for _, line := range []string{
		"Vendor: AWS",
		"Month: 2024-04",
		"Date: 2024-04-01",
		"Cost: $12.5 USD",
		"Account ID: A1",
		"Product Name: EC2",
		"Region Name: us-east-1",
	} {
		assert.Contains(t, got, line)
	}

	assert.Equal(t, NoDataMessage, Format(r, Query{Vendors: []string{"Azure"}}))
}

func TestFormat_Filters(t *testing.T) {
	r := mustDecode(t, sampleReport)

	tests := []struct {
		name        string
		query       Query
		wantVendors []string
		wantMonths  []string
		exact       string
	}{
		{
			name:        "vendor filter keeps caller order",
			query:       Query{Vendors: []string{"GCP", "AWS"}},
			wantVendors: []string{"GCP", "AWS"},
			wantMonths:  []string{"2024-06", "2024-04"},
		},
		{
			name:        "unknown vendors are skipped",
			query:       Query{Vendors: []string{"Oracle", "Azure", "IBM"}},
			wantVendors: []string{"Azure"},
			wantMonths:  []string{"2024-05", "2024-04"},
		},
		{
			name:        "month filter keeps vendor order, not caller order",
			query:       Query{Vendors: []string{"AWS"}, Months: []string{"2024-04", "2024-06"}},
			wantVendors: []string{"AWS"},
			wantMonths:  []string{"2024-06", "2024-04"},
		},
		{
			name:        "month filter intersects per vendor",
			query:       Query{Months: []string{"2024-05"}},
			wantVendors: []string{"Azure", "AWS", "GCP"},
			wantMonths:  []string{"2024-05"},
		},
		{
			name:        "vendor with no matching month still gets a header",
			query:       Query{Vendors: []string{"GCP"}, Months: []string{"2024-04"}},
			wantVendors: []string{"GCP"},
			exact:       "Vendor: GCP\n\n",
		},
		{
			name:  "only unknown vendors",
			query: Query{Vendors: []string{"Oracle"}},
			exact: NoDataMessage,
		},
		{
			name:        "empty filter slices mean no filter",
			query:       Query{Vendors: []string{}, Months: []string{}},
			wantVendors: []string{"Azure", "AWS", "GCP"},
			wantMonths:  []string{"2024-05", "2024-04", "2024-06", "2024-04"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(r, tt.query)
			if tt.exact != "" {
				assert.Equal(t, tt.exact, got)
			}
			if tt.exact == NoDataMessage {
				return
			}
			assert.Equal(t, tt.wantVendors, linesWithPrefix(got, "Vendor: "))
			if tt.wantMonths != nil {
				assert.Equal(t, tt.wantMonths, linesWithPrefix(got, "  Month: "))
			}
		})
	}
}

func TestFormat_FailureAndEmpty(t *testing.T) {
	assert.Equal(t, FailureMessage, Format(nil, Query{}))
	assert.Equal(t, FailureMessage, Format(&Report{}, Query{Vendors: []string{"AWS"}}))
	assert.Equal(t, NoDataMessage, Format(mustDecode(t, `{"Data": {}}`), Query{}))
}

func TestFormat_NilVendorIsSkipped(t *testing.T) {
	ds := NewDataset()
	ds.Set("Broken", nil)
	assert.Equal(t, NoDataMessage, Format(&Report{Data: ds}, Query{}))
}

func TestFormatCost(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{12.5, "12.5"},
		{100, "100"},
		{-3.25, "-3.25"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1234567.891, "1234567.891"},
		{0.000001, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{1e21, "1e+21"},
		{-2.5e22, "-2.5e+22"},
		{123456789012345680000, "123456789012345680000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCost(tt.in))
		})
	}
}

// linesWithPrefix returns the remainder of each line starting with prefix.
func linesWithPrefix(text, prefix string) []string {
	var out []string
	for line := range strings.SplitSeq(text, "\n") {
		if rest, ok := strings.CutPrefix(line, prefix); ok {
			out = append(out, rest)
		}
	}
	return out
}

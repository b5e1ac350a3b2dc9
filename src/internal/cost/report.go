// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cost

import (
	"bytes"

	"github.com/bytedance/sonic"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// strictJSON decodes report documents with exact key matching, so a "Cost"
// key never overwrites the validated "cost".
var strictJSON = sonic.Config{CaseSensitive: true}.Froze()

// Entry is a single cost line item. Cost is expressed in USD.
type Entry struct {
	Date        string  `json:"date"`
	Cost        float64 `json:"cost"`
	AccountID   string  `json:"accountId"`
	ProductName string  `json:"productName"`
	RegionName  string  `json:"regionName"`
}

// Entries holds the cost line items of one month.
type Entries []Entry

// UnmarshalJSON decodes an array of entries. Any other JSON value, null
// included, leaves the month without entries.
func (e *Entries) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		*e = nil
		return nil
	}

	var entries []Entry
	if err := strictJSON.Unmarshal(data, &entries); err != nil {
		return err
	}
	*e = entries
	return nil
}

// VendorMonths maps month keys to entries in file order.
// A nil Entries value means the month was present with no data.
type VendorMonths = orderedmap.OrderedMap[string, Entries]

// Dataset maps vendor names to their months in file order.
// A vendor recorded as null has a nil value and is skipped by queries.
type Dataset = orderedmap.OrderedMap[string, *VendorMonths]

// Report is the top-level document of a cost report file.
type Report struct {
	Data *Dataset `json:"Data"`
}

// decodeReport decodes a document that already passed [Validate].
func decodeReport(doc []byte) (*Report, error) {
	var report Report
	if err := strictJSON.Unmarshal(doc, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return orderedmap.New[string, *VendorMonths]()
}

// NewVendorMonths returns an empty month mapping.
func NewVendorMonths() *VendorMonths {
	return orderedmap.New[string, Entries]()
}

// Vendors returns the vendor names of the report in file order.
// It returns nil for a nil report or a report without data.
func (r *Report) Vendors() []string {
	if r == nil || r.Data == nil {
		return nil
	}
	return keys(r.Data)
}

// Months returns the month keys recorded for vendor in file order.
func (r *Report) Months(vendor string) []string {
	if r == nil || r.Data == nil {
		return nil
	}
	months, ok := r.Data.Get(vendor)
	if !ok || months == nil {
		return nil
	}
	return keys(months)
}

// keys lists the keys of an ordered map from oldest to newest.
func keys[V any](m *orderedmap.OrderedMap[string, V]) []string {
	out := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

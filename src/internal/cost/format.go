// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cost

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/internal/helper/gc"
)

const (
	// FailureMessage is returned when no report could be loaded.
	FailureMessage = "Failed to load cost data"
	// NoDataMessage is returned when the filters select nothing.
	NoDataMessage = "No cost data found for the given parameters."
)

// Query holds the optional filters of a cost lookup.
// An empty slice means "no filter".
type Query struct {
	Vendors []string `json:"vendors,omitempty"`
	Months  []string `json:"months,omitempty"`
}

// vendorSelection is one vendor chosen by a query with its chosen months.
type vendorSelection struct {
	name   string
	data   *VendorMonths
	months []string
}

// selection applies the query filters to report.
//
// Vendors come from q.Vendors in caller order when given, with names absent
// from the report skipped; otherwise all vendors in file order. Months keep
// the vendor's own order and, when q.Months is given, only those listed.
func (q Query) selection(report *Report) []vendorSelection {
	vendors := q.Vendors
	if len(vendors) == 0 {
		vendors = report.Vendors()
	}

	out := make([]vendorSelection, 0, len(vendors))
	for _, name := range vendors {
		data, ok := report.Data.Get(name)
		if !ok || data == nil {
			continue
		}

		months := keys(data)
		if len(q.Months) > 0 {
			months = slices.DeleteFunc(months, func(m string) bool {
				return !slices.Contains(q.Months, m)
			})
		}

		out = append(out, vendorSelection{name: name, data: data, months: months})
	}
	return out
}

// Format renders the entries of report selected by q as text.
//
// Layout, one vendor block after another:
//
//	Vendor: AWS
//	  Month: 2024-04
//	    Date: 2024-04-01
//	    Cost: $12.5 USD
//	    Account ID: A1
//	    Product Name: EC2
//	    Region Name: us-east-1
//	<blank line after every entry>
//	    No cost data available      (month without entries)
//	<blank line after every vendor>
//
// A nil report, or one without data, yields [FailureMessage]. A selection that
// renders nothing yields [NoDataMessage].
func Format(report *Report, q Query) string {
	if report == nil || report.Data == nil {
		return FailureMessage
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for _, v := range q.selection(report) {
		buf.WriteString("Vendor: ")
		buf.WriteString(v.name)
		buf.WriteByte('\n')

		for _, month := range v.months {
			buf.WriteString("  Month: ")
			buf.WriteString(month)
			buf.WriteByte('\n')

			entries, _ := v.data.Get(month)
			if len(entries) == 0 {
				buf.WriteString("    No cost data available\n")
				continue
			}
			for _, e := range entries {
				writeEntry(buf, e)
			}
		}
		buf.WriteByte('\n')
	}

	if strings.TrimSpace(buf.String()) == "" {
		return NoDataMessage
	}
	return buf.String()
}

// writeEntry renders the five labelled lines of e and the trailing blank line.
func writeEntry(buf gc.Buffer, e Entry) {
	buf.WriteString("    Date: ")
	buf.WriteString(e.Date)
	buf.WriteString("\n    Cost: $")
	buf.WriteString(FormatCost(e.Cost))
	buf.WriteString(" USD\n    Account ID: ")
	buf.WriteString(e.AccountID)
	buf.WriteString("\n    Product Name: ")
	buf.WriteString(e.ProductName)
	buf.WriteString("\n    Region Name: ")
	buf.WriteString(e.RegionName)
	buf.WriteString("\n\n")
}

// FormatCost renders a cost with the fewest digits that round-trip, e.g.
// "12.5", "100" or "0.30000000000000004". Magnitudes of 1e21 and above or
// below 1e-6 use an exponent without zero padding ("1e+21", "1.5e-7").
func FormatCost(v float64) string {
	if v == 0 {
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cost

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Total aggregates the entries of one vendor month.
type Total struct {
	Vendor  string  `json:"vendor"`
	Month   string  `json:"month"`
	Entries int     `json:"entries"`
	Cost    float64 `json:"cost"`
}

// Summarize returns one Total per vendor month selected by q, in the same
// order [Format] renders them. It returns nil for a nil report.
func Summarize(report *Report, q Query) []Total {
	if report == nil || report.Data == nil {
		return nil
	}

	var totals []Total
	for _, v := range q.selection(report) {
		for _, month := range v.months {
			entries, _ := v.data.Get(month)
			t := Total{Vendor: v.name, Month: month, Entries: len(entries)}
			for _, e := range entries {
				t.Cost += e.Cost
			}
			totals = append(totals, t)
		}
	}
	return totals
}

// usd formats amounts with thousands separators and two decimals.
var usd = message.NewPrinter(language.English)

// FormatUSD renders an amount as "$1,234.50".
func FormatUSD(v float64) string { return usd.Sprintf("$%.2f", v) }

// RenderTotals writes totals as a markdown table followed by a grand total row.
//
// Parameters:
//   - w: Destination of the table
//   - totals: Rows produced by Summarize
//
// Returns:
//   - error: Any error reported by the table renderer
func RenderTotals(w io.Writer, totals []Total) error {
	if len(totals) == 0 {
		_, err := fmt.Fprintln(w, NoDataMessage)
		return err
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
	)
	table.Header([]string{"Vendor", "Month", "Entries", "Cost (USD)"})

	var (
		rows       [][]string
		grand      float64
		allEntries int
	)
	for _, t := range totals {
		rows = append(rows, []string{t.Vendor, t.Month, strconv.Itoa(t.Entries), FormatUSD(t.Cost)})
		grand += t.Cost
		allEntries += t.Entries
	}
	rows = append(rows, []string{"Total", "", strconv.Itoa(allEntries), FormatUSD(grand)})

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to add table rows: %w", err)
	}
	return table.Render()
}

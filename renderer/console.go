// Package renderer turns calculation and diagnosis results into their
// presentation forms: console tables, markdown reports, and the HTML
// dashboard. It holds no decision logic of its own.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/equipage/equipage"
	"github.com/equipage/equipage/date"
	"github.com/gosuri/uitable"
)

const rule = 110

// CostTable writes the aligned cost table for all results, followed by
// the totals line, the summary block, and the category breakdown.
func CostTable(w io.Writer, on date.Date, results []equipage.Result) {
	line := strings.Repeat("=", rule)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "📊 Equipment Cost Report")
	fmt.Fprintf(w, "Reference date: %s\n", on)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w)

	table := uitable.New()
	table.MaxColWidth = 28
	table.AddRow("ID", "NAME", "PURCHASED", "PRICE", "DAYS", "DAILY COST", "", "RESIDUAL")
	for _, r := range results {
		e, c := r.Equipment, r.Calculation
		table.AddRow(
			e.ID,
			e.Name,
			e.PurchaseDate.String(),
			e.Price.String(),
			fmt.Sprintf("%dd", c.DaysUsed),
			c.DailyCost.String()+"/d",
			c.Indicator,
			c.ResidualValue.String(),
		)
	}
	fmt.Fprintln(w, table)
	fmt.Fprintln(w, strings.Repeat("-", rule))

	s := equipage.Summarize(results)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "📈 Summary:")
	fmt.Fprintf(w, "  Equipment count:   %d\n", s.Count)
	fmt.Fprintf(w, "  Total investment:  %s\n", s.TotalPrice)
	fmt.Fprintf(w, "  Estimated residual: %s\n", s.TotalResidual)
	fmt.Fprintf(w, "  Total depreciation: %s\n", s.TotalDepreciation)
	if s.Count > 0 {
		fmt.Fprintf(w, "  Average daily cost: %s/d\n", s.AvgDailyCost)
	}
	fmt.Fprintln(w)

	categories := equipage.ByCategory(results)
	if len(categories) == 0 {
		return
	}
	fmt.Fprintln(w, "📂 By category:")
	for _, cat := range categories {
		fmt.Fprintf(w, "  %s: %d devices, %s, %s/d avg\n",
			cat.Label, cat.Count, cat.TotalPrice, cat.AvgDailyCost)
	}
	fmt.Fprintln(w)
}

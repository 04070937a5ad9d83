package renderer

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/equipage/equipage"
	"github.com/equipage/equipage/date"
)

//go:embed templates/*.tmpl
var templates embed.FS

// reportTemplate is the static dashboard. html/template escapes every
// user-supplied field (device names, notes) on the way in.
var reportTemplate = template.Must(template.ParseFS(templates, "templates/report.html.tmpl"))

type htmlCard struct {
	Icon  string
	Value string
	Label string
	Note  string
}

type htmlCategory struct {
	Label        string
	Count        int
	TotalPrice   string
	AvgDailyCost string
}

type htmlRow struct {
	Name         string
	Category     string
	PurchaseDate string
	Price        string
	DaysUsed     int
	DailyCost    string
	StatusClass  string
	StatusLabel  string
	Residual     string
}

type htmlReport struct {
	GeneratedOn string
	Cards       []htmlCard
	Categories  []htmlCategory
	Rows        []htmlRow
}

// HTMLReport writes the self-contained HTML dashboard: summary cards,
// per-category cards, and the device table. No client-side computation.
func HTMLReport(w io.Writer, on date.Date, results []equipage.Result) error {
	s := equipage.Summarize(results)

	remaining := "-"
	if !s.TotalPrice.IsZero() {
		pct := s.TotalResidual.Decimal().Div(s.TotalPrice.Decimal()).InexactFloat64() * 100
		remaining = fmt.Sprintf("%.1f%% remaining", pct)
	}
	avgDaily := "-"
	if s.Count > 0 {
		avgDaily = s.AvgDailyCost.String()
	}

	report := htmlReport{
		GeneratedOn: on.String(),
		Cards: []htmlCard{
			{Icon: "📦", Value: fmt.Sprintf("%d", s.Count), Label: "Total Equipment"},
			{Icon: "💰", Value: s.TotalPrice.String(), Label: "Total Investment"},
			{Icon: "📉", Value: s.TotalResidual.String(), Label: "Residual Value", Note: remaining},
			{Icon: "📊", Value: avgDaily, Label: "Avg Daily Cost"},
		},
	}

	for _, cat := range equipage.ByCategory(results) {
		report.Categories = append(report.Categories, htmlCategory{
			Label:        cat.Label,
			Count:        cat.Count,
			TotalPrice:   cat.TotalPrice.String(),
			AvgDailyCost: cat.AvgDailyCost.String(),
		})
	}

	for _, r := range results {
		e, c := r.Equipment, r.Calculation
		category := e.Category
		if category == "" {
			category = "other"
		}
		report.Rows = append(report.Rows, htmlRow{
			Name:         e.Name,
			Category:     category,
			PurchaseDate: e.PurchaseDate.String(),
			Price:        e.Price.String(),
			DaysUsed:     c.DaysUsed,
			DailyCost:    c.DailyCost.Round(2).String(),
			StatusClass:  "status-" + c.Status,
			StatusLabel:  fmt.Sprintf("%s %s", c.Indicator, c.Status),
			Residual:     c.ResidualValue.String(),
		})
	}

	return reportTemplate.Execute(w, report)
}

package equipage

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/equipage/equipage/date"
)

// This file encodes the calculation output document: each equipment
// record merged with its depreciation result, plus a meta block with
// the run totals. Field order is kept stable so the file diffs well
// under version control.

func round2(f float64) float64 { return math.Round(f*100) / 100 }

// MarshalJSON writes the input record first, then the derived fields.
func (r Result) MarshalJSON() ([]byte, error) {
	c := r.Calculation
	var w jsonObjectWriter
	w.EmbedFrom(r.Equipment)
	w.Append("days_used", c.DaysUsed)
	w.Append("years_used", round2(c.YearsUsed))
	w.Append("daily_cost", c.DailyCost.Round(2))
	w.Append("residual_rate", c.ResidualRate)
	w.Append("residual_value", c.ResidualValue.Round(2))
	w.Append("status_label", c.Status)
	w.Append("status_indicator", c.Indicator)
	w.Append("sell_price_suggested", c.SellSuggested.Round(0))
	w.Append("sell_price_range", fmt.Sprintf("%s-%s",
		c.SellMin.Round(0).Decimal(), c.SellMax.Round(0).Decimal()))
	return w.MarshalJSON()
}

// ResultsDocument is the calculation output file: run totals up front,
// merged records after.
type ResultsDocument struct {
	Meta    ResultsMeta `json:"meta"`
	Results []Result    `json:"equipment"`
}

type ResultsMeta struct {
	CalculatedAt   date.Date `json:"calculated_at"`
	TotalEquipment int       `json:"total_equipment"`
	TotalPrice     Money     `json:"total_price"`
	TotalResidual  Money     `json:"total_residual"`
}

// NewResultsDocument folds the results into the output document.
func NewResultsDocument(on date.Date, results []Result) *ResultsDocument {
	s := Summarize(results)
	return &ResultsDocument{
		Meta: ResultsMeta{
			CalculatedAt:   on,
			TotalEquipment: s.Count,
			TotalPrice:     s.TotalPrice,
			TotalResidual:  s.TotalResidual,
		},
		Results: results,
	}
}

// WriteResults writes the calculation output file.
func WriteResults(path string, on date.Date, results []Result) error {
	doc := NewResultsDocument(on, results)
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode results: %w", err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("could not write results file %q: %w", path, err)
	}
	return nil
}

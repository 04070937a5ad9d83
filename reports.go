package equipage

import (
	"sort"

	"github.com/equipage/equipage/date"
)

// Result is an input device merged with its depreciation result, the
// unit every report and output file is built from.
type Result struct {
	Equipment   Equipment
	Calculation Calculation
}

// CalculateAll depreciates every device against the reference date.
func CalculateAll(devices []Equipment, on date.Date) []Result {
	results := make([]Result, 0, len(devices))
	for _, e := range devices {
		results = append(results, Result{
			Equipment:   e,
			Calculation: Calculate(e.PurchaseDate, e.Price, on),
		})
	}
	return results
}

// Summary is the totals block under the cost table.
type Summary struct {
	Count             int
	TotalPrice        Money
	TotalResidual     Money
	TotalDepreciation Money
	AvgDailyCost      Money
}

// Summarize folds the per-device results into fleet totals.
func Summarize(results []Result) Summary {
	var s Summary
	var dailySum Money
	for _, r := range results {
		s.Count++
		s.TotalPrice = s.TotalPrice.Add(r.Equipment.Price)
		s.TotalResidual = s.TotalResidual.Add(r.Calculation.ResidualValue)
		dailySum = dailySum.Add(r.Calculation.DailyCost)
	}
	s.TotalDepreciation = s.TotalPrice.Sub(s.TotalResidual)
	if s.Count > 0 {
		s.AvgDailyCost = dailySum.DivCount(s.Count)
	}
	return s
}

// CategoryStat aggregates the devices of one category.
type CategoryStat struct {
	Category     string
	Label        string
	Count        int
	TotalPrice   Money
	AvgDailyCost Money
}

// categoryLabels maps category tags to their display names.
var categoryLabels = map[string]string{
	"computer":     "💻 Computers",
	"phone":        "📱 Phones",
	"tablet":       "📱 Tablets",
	"wearable":     "⌚ Wearables",
	"smart-home":   "🏠 Smart home",
	"gaming":       "🎮 Gaming",
	"ev-accessory": "🔌 EV accessories",
	"vehicle":      "🚗 Vehicles",
	"other":        "📦 Other",
}

// CategoryLabel returns the display name of a category tag, or the tag
// itself when no display name is registered.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

// ByCategory folds the results into per-category stats, sorted by
// category tag. Devices without a category count as "other".
func ByCategory(results []Result) []CategoryStat {
	stats := map[string]*CategoryStat{}
	dailySums := map[string]Money{}
	for _, r := range results {
		cat := r.Equipment.Category
		if cat == "" {
			cat = "other"
		}
		st, ok := stats[cat]
		if !ok {
			st = &CategoryStat{Category: cat, Label: CategoryLabel(cat)}
			stats[cat] = st
		}
		st.Count++
		st.TotalPrice = st.TotalPrice.Add(r.Equipment.Price)
		dailySums[cat] = dailySums[cat].Add(r.Calculation.DailyCost)
	}

	out := make([]CategoryStat, 0, len(stats))
	for cat, st := range stats {
		st.AvgDailyCost = dailySums[cat].DivCount(st.Count)
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// Diagnosis is the scored view of the whole registry, sorted best
// first.
type Diagnosis struct {
	On            date.Date
	Results       []Health // sorted by score, descending
	TotalResidual Money
}

// Diagnose scores every device and folds the results into a diagnosis.
// It fails on the first device missing a required field.
func Diagnose(devices []Equipment, benchmarks Benchmarks, on date.Date) (*Diagnosis, error) {
	d := &Diagnosis{On: on}
	for _, e := range devices {
		h, err := Score(e, benchmarks.Lookup(e.Category), on)
		if err != nil {
			return nil, err
		}
		d.Results = append(d.Results, h)
		d.TotalResidual = d.TotalResidual.Add(h.ResidualValue)
	}
	sort.SliceStable(d.Results, func(i, j int) bool {
		return d.Results[i].HealthScore > d.Results[j].HealthScore
	})
	return d, nil
}

// Top returns the n best-scoring devices.
func (d *Diagnosis) Top(n int) []Health {
	if n > len(d.Results) {
		n = len(d.Results)
	}
	return d.Results[:n]
}

// SellCandidates returns the devices whose recommended action is to
// replace them.
func (d *Diagnosis) SellCandidates() []Health {
	var out []Health
	for _, h := range d.Results {
		if h.Action == ActionReplace {
			out = append(out, h)
		}
	}
	return out
}

// RecoverableValue sums the residual value of the sell candidates.
func (d *Diagnosis) RecoverableValue() Money {
	var total Money
	for _, h := range d.SellCandidates() {
		total = total.Add(h.ResidualValue)
	}
	return total
}

// RefreshBudget proposes an annual renewal budget: 2% of the estimated
// residual value of the whole registry.
func (d *Diagnosis) RefreshBudget() Money {
	return d.TotalResidual.MulRate(0.02)
}

package equipage

import (
	"github.com/equipage/equipage/date"
)

// band is one step of the residual-rate table: devices younger than
// maxYears (and not matched by an earlier band) keep rate of their
// purchase price.
type band struct {
	maxYears  float64
	rate      float64
	status    string
	indicator string
}

// residualBands is the canonical depreciation policy. The rate is a
// non-increasing step function of years used.
var residualBands = []band{
	{1, 0.80, "new", "🟢"},
	{2, 0.65, "growing", "🟢"},
	{3, 0.50, "mature", "🟡"},
	{4, 0.35, "aging", "🟡"},
	{-1, 0.20, "old", "🔴"}, // 4 years and beyond
}

// residualBand returns the band a device of the given age falls in.
func residualBand(years float64) band {
	for _, b := range residualBands {
		if b.maxYears < 0 || years < b.maxYears {
			return b
		}
	}
	return residualBands[len(residualBands)-1]
}

// Calculation is the result of depreciating one device. It is derived,
// recomputed every run, and never persisted by the calculator itself.
type Calculation struct {
	DaysUsed      int     // clamped to >= 1
	YearsUsed     float64 // DaysUsed / 365
	DailyCost     Money   // price / DaysUsed
	ResidualRate  float64
	ResidualValue Money // price * ResidualRate
	Status        string
	Indicator     string
	SellSuggested Money // the suggested ask, 85% of residual
	SellMin       Money // 70% of residual
	SellMax       Money // 100% of residual
}

// Calculate depreciates a purchase against a reference date. It is a
// pure function: same inputs, same result.
//
// A purchase dated on (or after) the reference date counts as one day
// used, so the daily cost is always defined. Future-dated entries are
// tolerated on purpose, not rejected.
func Calculate(purchase date.Date, price Money, on date.Date) Calculation {
	days := on.Sub(purchase)
	if days <= 0 {
		days = 1
	}
	years := float64(days) / 365

	b := residualBand(years)
	residual := price.MulRate(b.rate)

	return Calculation{
		DaysUsed:      days,
		YearsUsed:     years,
		DailyCost:     price.DivDays(days),
		ResidualRate:  b.rate,
		ResidualValue: residual,
		Status:        b.status,
		Indicator:     b.indicator,
		SellSuggested: residual.MulRate(0.85),
		SellMin:       residual.MulRate(0.70),
		SellMax:       residual,
	}
}

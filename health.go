package equipage

import (
	"math"

	"github.com/equipage/equipage/date"
)

// Operational status tags recognized by the scorer. Anything else
// scores the bottom of the status component.
const (
	StatusActive = "active"
	StatusIdle   = "idle"
)

// Actions recommended by a health rating.
const (
	ActionContinue = "continue"
	ActionMonitor  = "monitor"
	ActionEvaluate = "evaluate"
	ActionReplace  = "replace"
)

// Health is the scored view of one device: the three capped components,
// their sum, and the tier it lands in.
type Health struct {
	DeviceID      string
	Name          string
	Category      string
	DailyCost     Money
	YearsUsed     float64 // DaysUsed / 365.25
	ResidualRate  float64
	ResidualValue Money
	CostScore     float64 // 0-40
	AgeScore      float64 // 0-30
	StatusScore   float64 // 0-30
	HealthScore   float64 // sum, rounded to one decimal
	Rating        string
	Action        string
	Advice        string
	Benchmark     Benchmark
}

// Score grades a device against its category benchmark on a reference
// date. Pure function; the only failure mode is a record missing the
// fields the calculation needs.
//
// Three independently capped components are summed:
//   - cost efficiency (0-40): full marks at or below the benchmark's
//     efficient daily cost, a 10-point floor at or above the expensive
//     end, linear in between. The floor is deliberate: an expensive
//     device that is still in use is not worthless.
//   - age fit (0-30): full marks up to half the expected lifespan, a
//     5-point floor from 1.5 lifespans on, linear in between.
//   - operational status (0-30): active 30, idle 15, anything else 5.
func Score(e Equipment, bm Benchmark, on date.Date) (Health, error) {
	if err := e.Validate(); err != nil {
		return Health{}, err
	}

	days := on.Sub(e.PurchaseDate)
	if days <= 0 {
		days = 1
	}
	years := float64(days) / 365.25
	dailyCost := e.Price.DivDays(days)
	b := residualBand(years)

	costScore := 40.0
	dc := dailyCost.InexactFloat64()
	switch {
	case dc <= bm.Low:
		costScore = 40
	case dc >= bm.High:
		costScore = 10
	default:
		costScore = 40 - (dc-bm.Low)/(bm.High-bm.Low)*30
	}

	ageScore := 30.0
	ratio := years / bm.LifespanYears
	switch {
	case ratio <= 0.5:
		ageScore = 30
	case ratio >= 1.5:
		ageScore = 5
	default:
		ageScore = 30 - (ratio-0.5)*25
	}

	var statusScore float64
	switch e.Status {
	case StatusActive:
		statusScore = 30
	case StatusIdle:
		statusScore = 15
	default:
		statusScore = 5
	}

	total := math.Round((costScore+ageScore+statusScore)*10) / 10
	rating, action, advice := Rate(total)

	return Health{
		DeviceID:      e.ID,
		Name:          e.Name,
		Category:      e.Category,
		DailyCost:     dailyCost,
		YearsUsed:     years,
		ResidualRate:  b.rate,
		ResidualValue: e.Price.MulRate(b.rate),
		CostScore:     costScore,
		AgeScore:      ageScore,
		StatusScore:   statusScore,
		HealthScore:   total,
		Rating:        rating,
		Action:        action,
		Advice:        advice,
		Benchmark:     bm,
	}, nil
}

// Rate maps a health score to its tier. Tiers are closed on the lower
// bound: exactly 85.0 is epic, 84.9 is excellent.
func Rate(score float64) (rating, action, advice string) {
	switch {
	case score >= 85:
		return "🏆 Epic", ActionContinue, "Use it until it dies, outstanding value"
	case score >= 70:
		return "🟢 Excellent", ActionContinue, "Performing well, keep using it"
	case score >= 55:
		return "🟡 Good", ActionMonitor, "Normal use, watch the maintenance"
	case score >= 40:
		return "🟠 Fair", ActionEvaluate, "Evaluate whether it needs replacing"
	default:
		return "🔴 Replace", ActionReplace, "Consider selling or upgrading"
	}
}

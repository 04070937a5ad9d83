package equipage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Benchmark is the per-category reference used to normalize health
// scores: an efficient/expensive daily-cost range and the lifespan the
// category is expected to serve.
type Benchmark struct {
	Low           float64 `yaml:"low"`            // daily cost at or below this is fully efficient
	High          float64 `yaml:"high"`           // daily cost at or above this hits the floor
	LifespanYears float64 `yaml:"lifespan_years"` // expected service life
}

// Benchmarks maps a category tag to its benchmark. The "default" entry
// must always be present.
type Benchmarks map[string]Benchmark

// DefaultCategory is the fallback benchmark key.
const DefaultCategory = "default"

// DefaultBenchmarks returns the built-in benchmark table. A fresh copy
// is returned every time so callers can merge overrides without
// touching shared state.
func DefaultBenchmarks() Benchmarks {
	return Benchmarks{
		"computer":     {Low: 15, High: 35, LifespanYears: 4},
		"phone":        {Low: 5, High: 15, LifespanYears: 3},
		"tablet":       {Low: 2, High: 8, LifespanYears: 4},
		"wearable":     {Low: 1, High: 4, LifespanYears: 3},
		"smart-home":   {Low: 0.5, High: 3, LifespanYears: 5},
		"gaming":       {Low: 2, High: 8, LifespanYears: 5},
		"ev-accessory": {Low: 5, High: 15, LifespanYears: 6},
		"vehicle":      {Low: 200, High: 500, LifespanYears: 8},
		DefaultCategory: {Low: 1, High: 10, LifespanYears: 3},
	}
}

// Lookup returns the benchmark for a category, falling back to the
// default entry for unknown categories. It never fails.
func (b Benchmarks) Lookup(category string) Benchmark {
	if bm, ok := b[category]; ok {
		return bm
	}
	return b[DefaultCategory]
}

// LoadBenchmarks reads a YAML file of per-category overrides and merges
// it over the built-in table.
func LoadBenchmarks(path string) (Benchmarks, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read benchmarks file %q: %w", path, err)
	}
	var overrides map[string]Benchmark
	if err := yaml.Unmarshal(content, &overrides); err != nil {
		return nil, fmt.Errorf("could not decode benchmarks file %q: %w", path, err)
	}

	merged := DefaultBenchmarks()
	for category, bm := range overrides {
		if bm.Low > bm.High {
			return nil, fmt.Errorf("invalid benchmark for %q in %q: low %g > high %g", category, path, bm.Low, bm.High)
		}
		if bm.LifespanYears <= 0 {
			return nil, fmt.Errorf("invalid benchmark for %q in %q: lifespan_years must be positive", category, path)
		}
		merged[category] = bm
	}
	return merged, nil
}

package equipage

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBenchmarks(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "benchmarks.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("could not write benchmarks file: %v", err)
	}
	return path
}

func TestLoadBenchmarks_MergesOverBuiltins(t *testing.T) {
	path := writeBenchmarks(t, `
computer:
  low: 20
  high: 50
  lifespan_years: 5
drone:
  low: 3
  high: 12
  lifespan_years: 2
`)
	b, err := LoadBenchmarks(path)
	if err != nil {
		t.Fatalf("LoadBenchmarks() failed: %v", err)
	}

	if got := b.Lookup("computer"); got.Low != 20 || got.High != 50 || got.LifespanYears != 5 {
		t.Errorf("computer override not applied: %+v", got)
	}
	if got := b.Lookup("drone"); got.LifespanYears != 2 {
		t.Errorf("new category not merged: %+v", got)
	}
	// untouched built-ins survive the merge
	if got := b.Lookup("phone"); got.Low != 5 || got.High != 15 {
		t.Errorf("phone builtin lost: %+v", got)
	}
	if got := b.Lookup("hovercraft"); got != b[DefaultCategory] {
		t.Errorf("default fallback lost: %+v", got)
	}
}

func TestLoadBenchmarks_RejectsInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"low above high", "computer:\n  low: 50\n  high: 20\n  lifespan_years: 4\n"},
		{"zero lifespan", "computer:\n  low: 1\n  high: 2\n  lifespan_years: 0\n"},
		{"not yaml", "{{{{"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeBenchmarks(t, tc.content)
			if _, err := LoadBenchmarks(path); err == nil {
				t.Error("LoadBenchmarks() should have failed")
			}
		})
	}
}

func TestLoadBenchmarks_MissingFile(t *testing.T) {
	if _, err := LoadBenchmarks(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadBenchmarks() on a missing file should fail")
	}
}

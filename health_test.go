package equipage

import (
	"strings"
	"testing"
)

// device builds a minimal valid record for scoring tests.
func device(t *testing.T, price float64, daysAgo int, status string) Equipment {
	t.Helper()
	on := D("2026-01-01")
	return Equipment{
		ID:           "001",
		Name:         "test device",
		Category:     "computer",
		PurchaseDate: on.Add(-daysAgo),
		Price:        CNY(price),
		Status:       status,
	}
}

func TestScore_PerfectDevice(t *testing.T) {
	// cheap per day, young, and active: exactly 100.0
	bm := Benchmark{Low: 15, High: 35, LifespanYears: 4}
	h, err := Score(device(t, 100, 100, StatusActive), bm, D("2026-01-01"))
	if err != nil {
		t.Fatalf("Score() failed: %v", err)
	}
	if h.HealthScore != 100.0 {
		t.Fatalf("HealthScore = %v, want 100.0", h.HealthScore)
	}
	if h.Rating != "🏆 Epic" || h.Action != ActionContinue {
		t.Errorf("tier = %q/%q, want epic/continue", h.Rating, h.Action)
	}
}

func TestScore_WorstDevice(t *testing.T) {
	// expensive per day, past 1.5 lifespans, and neither active nor
	// idle: 10 + 5 + 5 = 20.0
	bm := Benchmark{Low: 15, High: 35, LifespanYears: 4}
	h, err := Score(device(t, 200000, 2200, "broken"), bm, D("2026-01-01"))
	if err != nil {
		t.Fatalf("Score() failed: %v", err)
	}
	if h.CostScore != 10 {
		t.Errorf("CostScore = %v, want 10", h.CostScore)
	}
	if h.AgeScore != 5 {
		t.Errorf("AgeScore = %v, want 5", h.AgeScore)
	}
	if h.StatusScore != 5 {
		t.Errorf("StatusScore = %v, want 5", h.StatusScore)
	}
	if h.HealthScore != 20.0 {
		t.Fatalf("HealthScore = %v, want 20.0", h.HealthScore)
	}
	if h.Action != ActionReplace {
		t.Errorf("Action = %q, want %q", h.Action, ActionReplace)
	}
}

func TestScore_ComponentInterpolation(t *testing.T) {
	// dailyCost at the midpoint of [low, high] scores 40 - 15 = 25.
	// 1000 days at price 25000 is 25/day against low 15 high 35.
	bm := Benchmark{Low: 15, High: 35, LifespanYears: 10}
	h, err := Score(device(t, 25000, 1000, StatusActive), bm, D("2026-01-01"))
	if err != nil {
		t.Fatalf("Score() failed: %v", err)
	}
	if got := h.CostScore; got < 24.9 || got > 25.1 {
		t.Errorf("CostScore = %v, want 25", got)
	}
}

func TestScore_IdleStatus(t *testing.T) {
	bm := Benchmark{Low: 15, High: 35, LifespanYears: 4}
	h, err := Score(device(t, 100, 100, StatusIdle), bm, D("2026-01-01"))
	if err != nil {
		t.Fatalf("Score() failed: %v", err)
	}
	if h.StatusScore != 15 {
		t.Errorf("StatusScore = %v, want 15", h.StatusScore)
	}
}

func TestScore_MissingRequiredFields(t *testing.T) {
	bm := Benchmark{Low: 1, High: 10, LifespanYears: 3}
	e := device(t, 100, 100, StatusActive)
	e.Name = ""
	if _, err := Score(e, bm, D("2026-01-01")); err == nil {
		t.Fatal("Score() with missing name should fail")
	} else if !strings.Contains(err.Error(), "name") {
		t.Errorf("error %q should mention the missing field", err)
	}
}

func TestRate_TierBoundaries(t *testing.T) {
	testCases := []struct {
		score      float64
		wantAction string
	}{
		{100, ActionContinue},
		{85.0, ActionContinue}, // closed lower bound: exactly 85 is epic
		{84.9, ActionContinue}, // excellent, still continue
		{70.0, ActionContinue},
		{69.9, ActionMonitor},
		{55.0, ActionMonitor},
		{54.9, ActionEvaluate},
		{40.0, ActionEvaluate},
		{39.9, ActionReplace},
		{20, ActionReplace},
	}
	for _, tc := range testCases {
		if _, action, _ := Rate(tc.score); action != tc.wantAction {
			t.Errorf("Rate(%v) action = %q, want %q", tc.score, action, tc.wantAction)
		}
	}

	if rating, _, _ := Rate(85.0); rating != "🏆 Epic" {
		t.Errorf("Rate(85.0) rating = %q, want epic", rating)
	}
	if rating, _, _ := Rate(84.9); rating != "🟢 Excellent" {
		t.Errorf("Rate(84.9) rating = %q, want excellent", rating)
	}
}

func TestBenchmarks_LookupFallback(t *testing.T) {
	b := DefaultBenchmarks()
	got := b.Lookup("submarine")
	want := b[DefaultCategory]
	if got != want {
		t.Errorf("Lookup(unknown) = %+v, want default %+v", got, want)
	}
	if got := b.Lookup("computer"); got.LifespanYears != 4 {
		t.Errorf("Lookup(computer).LifespanYears = %v, want 4", got.LifespanYears)
	}
}

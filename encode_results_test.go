package equipage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestResultMarshalJSON_MergesInputAndResult(t *testing.T) {
	on := D("2026-04-11")
	e := Equipment{
		ID:           "001",
		Name:         "MacBook Air M3",
		Category:     "computer",
		PurchaseDate: on.Add(-400),
		Price:        CNY(8944),
		Status:       StatusActive,
	}
	r := Result{Equipment: e, Calculation: Calculate(e.PurchaseDate, e.Price, on)}

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	// input fields survive
	if got["id"] != "001" || got["name"] != "MacBook Air M3" {
		t.Errorf("input fields missing from %s", b)
	}
	// derived fields are appended
	if got["days_used"] != float64(400) {
		t.Errorf("days_used = %v, want 400", got["days_used"])
	}
	if got["residual_rate"] != 0.65 {
		t.Errorf("residual_rate = %v, want 0.65", got["residual_rate"])
	}
	if got["residual_value"] != 5813.6 {
		t.Errorf("residual_value = %v, want 5813.6", got["residual_value"])
	}
	if got["status_label"] != "growing" {
		t.Errorf("status_label = %v, want growing", got["status_label"])
	}
	if _, ok := got["sell_price_range"]; !ok {
		t.Errorf("sell_price_range missing from %s", b)
	}
}

func TestWriteResults(t *testing.T) {
	on := D("2026-01-01")
	devices := []Equipment{
		{ID: "001", Name: "laptop", Category: "computer", PurchaseDate: on.Add(-200), Price: CNY(8000), Status: StatusActive},
		{ID: "002", Name: "phone", Category: "phone", PurchaseDate: on.Add(-400), Price: CNY(5000), Status: StatusActive},
	}
	results := CalculateAll(devices, on)

	path := filepath.Join(t.TempDir(), "results.json")
	if err := WriteResults(path, on, results); err != nil {
		t.Fatalf("WriteResults() failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read results file: %v", err)
	}
	var doc struct {
		Meta struct {
			CalculatedAt   string  `json:"calculated_at"`
			TotalEquipment int     `json:"total_equipment"`
			TotalPrice     float64 `json:"total_price"`
			TotalResidual  float64 `json:"total_residual"`
		} `json:"meta"`
		Equipment []map[string]any `json:"equipment"`
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		t.Fatalf("results file is not valid JSON: %v", err)
	}

	if doc.Meta.CalculatedAt != "2026-01-01" {
		t.Errorf("calculated_at = %q", doc.Meta.CalculatedAt)
	}
	if doc.Meta.TotalEquipment != 2 {
		t.Errorf("total_equipment = %d, want 2", doc.Meta.TotalEquipment)
	}
	if doc.Meta.TotalPrice != 13000 {
		t.Errorf("total_price = %v, want 13000", doc.Meta.TotalPrice)
	}
	// 8000*0.80 + 5000*0.65
	if doc.Meta.TotalResidual != 9650 {
		t.Errorf("total_residual = %v, want 9650", doc.Meta.TotalResidual)
	}
	if len(doc.Equipment) != 2 {
		t.Errorf("got %d merged records, want 2", len(doc.Equipment))
	}
}

package equipage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleRegistry = `{
  "meta": {
    "version": "1.0",
    "created_at": "2025-01-01",
    "updated_at": "2025-06-01",
    "base_currency": "CNY"
  },
  "owner": {"name": "someone", "email": "", "timezone": "Asia/Shanghai"},
  "config": {
    "depreciation_method": "linear",
    "residual_rates": {"lt_1yr": 0.80}
  },
  "equipment": [
    {
      "id": "001",
      "name": "MacBook Air M3",
      "category": "computer",
      "purchase_date": "2025-03-07",
      "price": 8944.00,
      "currency": "CNY",
      "status": "active"
    },
    {
      "id": "002",
      "name": "iPhone 15",
      "category": "phone",
      "purchase_date": "2024-05-16",
      "price": 5768.00,
      "status": "active"
    }
  ]
}`

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "equipment-data.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("could not write registry file: %v", err)
	}
	return path
}

func TestLoadRegistry(t *testing.T) {
	r, err := LoadRegistry(writeRegistry(t, sampleRegistry))
	if err != nil {
		t.Fatalf("LoadRegistry() failed: %v", err)
	}

	if len(r.Equipment) != 2 {
		t.Fatalf("got %d equipment records, want 2", len(r.Equipment))
	}
	mac := r.Equipment[0]
	if mac.Name != "MacBook Air M3" || mac.PurchaseDate != D("2025-03-07") {
		t.Errorf("unexpected first record: %+v", mac)
	}
	if !mac.Price.Equal(CNY(8944)) {
		t.Errorf("Price = %v, want %v", mac.Price, CNY(8944))
	}
	// the second record has no currency field: it inherits the base currency
	if got := r.Equipment[1].Price.Currency(); got != "CNY" {
		t.Errorf("inherited currency = %q, want CNY", got)
	}
}

func TestLoadRegistry_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantIn  string
	}{
		{"malformed date", strings.Replace(sampleRegistry, "2025-03-07", "07/03/2025", 1), "invalid date"},
		{"missing id", strings.Replace(sampleRegistry, `"id": "001",`, "", 1), "missing an id"},
		{"missing name", strings.Replace(sampleRegistry, `"name": "MacBook Air M3",`, "", 1), "missing a name"},
		{"negative price", strings.Replace(sampleRegistry, "8944.00", "-1", 1), "negative price"},
		{"not json", "[what]", "decode"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadRegistry(writeRegistry(t, tc.content))
			if err == nil {
				t.Fatal("LoadRegistry() should have failed")
			}
			if !strings.Contains(err.Error(), tc.wantIn) {
				t.Errorf("error %q should contain %q", err, tc.wantIn)
			}
		})
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("LoadRegistry() on a missing file should fail")
	}
}

func TestRegistry_Filter(t *testing.T) {
	r, err := LoadRegistry(writeRegistry(t, sampleRegistry))
	if err != nil {
		t.Fatalf("LoadRegistry() failed: %v", err)
	}
	if got := r.Filter(""); len(got) != 2 {
		t.Errorf("Filter(\"\") = %d records, want 2", len(got))
	}
	phones := r.Filter("phone")
	if len(phones) != 1 || phones[0].ID != "002" {
		t.Errorf("Filter(phone) = %+v, want the iPhone only", phones)
	}
	if got := r.Filter("tablet"); len(got) != 0 {
		t.Errorf("Filter(tablet) = %d records, want 0", len(got))
	}
}

func TestRegistry_SaveRoundTrip(t *testing.T) {
	r := NewRegistry("CNY")
	r.Equipment = SampleEquipment()

	path := filepath.Join(t.TempDir(), "sub", "registry.json")
	if err := r.Save(path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	back, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry() failed: %v", err)
	}
	if len(back.Equipment) != 2 {
		t.Fatalf("got %d equipment records, want 2", len(back.Equipment))
	}
	if back.Meta.BaseCurrency != "CNY" {
		t.Errorf("BaseCurrency = %q, want CNY", back.Meta.BaseCurrency)
	}
	if !back.Equipment[0].Price.Equal(CNY(8944)) {
		t.Errorf("Price = %v, want %v", back.Equipment[0].Price, CNY(8944))
	}
	if got := back.Config.ResidualRates["lt_1yr"]; got != 0.80 {
		t.Errorf("ResidualRates[lt_1yr] = %v, want 0.80", got)
	}
}

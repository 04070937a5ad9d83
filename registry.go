package equipage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/equipage/equipage/date"
)

// Registry is the on-disk equipment registry: a little metadata, the
// owner, an informational config block, and the list of devices.
type Registry struct {
	Meta      Meta        `json:"meta"`
	Owner     Owner       `json:"owner"`
	Config    Config      `json:"config"`
	Equipment []Equipment `json:"equipment"`
}

type Meta struct {
	Version      string    `json:"version"`
	CreatedAt    date.Date `json:"created_at"`
	UpdatedAt    date.Date `json:"updated_at"`
	BaseCurrency string    `json:"base_currency"`
}

type Owner struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Timezone string `json:"timezone"`
}

// Config mirrors the residual-rate table into the file for human
// readers. It is informational: Calculate uses its own band table and
// never reads this back.
type Config struct {
	DepreciationMethod string             `json:"depreciation_method"`
	ResidualRates      map[string]float64 `json:"residual_rates"`
}

// Equipment is a single device record. It is externally owned and
// immutable during a run.
type Equipment struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Brand           string    `json:"brand,omitempty"`
	Model           string    `json:"model,omitempty"`
	Specs           string    `json:"specs,omitempty"`
	Color           string    `json:"color,omitempty"`
	SerialNumber    string    `json:"serial_number,omitempty"`
	Category        string    `json:"category,omitempty"`
	PurchaseDate    date.Date `json:"purchase_date"`
	PurchaseChannel string    `json:"purchase_channel,omitempty"`
	Seller          string    `json:"seller,omitempty"`
	OrderID         string    `json:"order_id,omitempty"`
	Price           Money     `json:"price"`
	Currency        string    `json:"currency,omitempty"`
	PaymentMethod   string    `json:"payment_method,omitempty"`
	WarrantyMonths  int       `json:"warranty_months,omitempty"`
	WarrantyExpiry  date.Date `json:"warranty_expiry,omitzero"`
	Owner           string    `json:"owner,omitempty"`
	Status          string    `json:"status,omitempty"`
	Location        string    `json:"location,omitempty"`
	Frequency       string    `json:"frequency,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Attachments     []string  `json:"attachments,omitempty"`
}

// Validate checks the fields every calculation needs.
func (e Equipment) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("equipment record is missing an id")
	}
	if e.Name == "" {
		return fmt.Errorf("equipment %q is missing a name", e.ID)
	}
	if e.PurchaseDate.IsZero() {
		return fmt.Errorf("equipment %q is missing a purchase_date", e.ID)
	}
	if e.Price.IsNegative() {
		return fmt.Errorf("equipment %q has a negative price", e.ID)
	}
	return nil
}

// LoadRegistry reads and decodes a registry file. Each device's price
// is labelled with the device currency, falling back to the registry
// base currency.
func LoadRegistry(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open registry file %q: %w", path, err)
	}
	defer f.Close()

	var r Registry
	if err := json.NewDecoder(f).Decode(&r); err != nil {
		return nil, fmt.Errorf("could not decode registry file %q: %w", path, err)
	}

	for i := range r.Equipment {
		e := &r.Equipment[i]
		c := e.Currency
		if c == "" {
			c = r.Meta.BaseCurrency
		}
		e.Price = M(e.Price.Decimal(), c)
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("invalid registry %q: %w", path, err)
		}
	}
	return &r, nil
}

// Save writes the registry back to path, creating parent directories.
func (r *Registry) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for registry %q: %w", path, err)
		}
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode registry: %w", err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("could not write registry %q: %w", path, err)
	}
	return nil
}

// Filter returns the devices matching category, or all of them when
// category is empty.
func (r *Registry) Filter(category string) []Equipment {
	if category == "" {
		return r.Equipment
	}
	var out []Equipment
	for _, e := range r.Equipment {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// NewRegistry returns an empty registry template with today's dates and
// the canonical residual-rate table spelled out for human readers.
func NewRegistry(baseCurrency string) *Registry {
	today := date.Today()
	return &Registry{
		Meta: Meta{
			Version:      "1.0",
			CreatedAt:    today,
			UpdatedAt:    today,
			BaseCurrency: baseCurrency,
		},
		Owner: Owner{Timezone: "Asia/Shanghai"},
		Config: Config{
			DepreciationMethod: "linear",
			ResidualRates: map[string]float64{
				"lt_1yr":  0.80,
				"lt_2yr":  0.65,
				"lt_3yr":  0.50,
				"lt_4yr":  0.35,
				"gte_4yr": 0.20,
			},
		},
		Equipment: []Equipment{},
	}
}

// SampleEquipment returns two example devices for a freshly created
// registry.
func SampleEquipment() []Equipment {
	return []Equipment{
		{
			ID:              "001",
			Name:            "MacBook Air M3",
			Brand:           "Apple",
			Model:           "MacBook Air 15-inch M3 2024",
			Specs:           "24GB RAM, 512GB SSD",
			Color:           "Midnight",
			Category:        "computer",
			PurchaseDate:    date.MustParse("2025-03-07"),
			PurchaseChannel: "jingdong",
			Price:           M(8944.00, "CNY"),
			Currency:        "CNY",
			PaymentMethod:   "credit_card",
			WarrantyMonths:  12,
			WarrantyExpiry:  date.MustParse("2026-03-07"),
			Owner:           "self",
			Status:          "active",
			Location:        "home",
			Frequency:       "daily",
			Notes:           "primary development machine",
		},
		{
			ID:              "002",
			Name:            "iPhone 15",
			Brand:           "Apple",
			Model:           "iPhone 15 256GB",
			Specs:           "256GB, Blue",
			Color:           "Blue",
			Category:        "phone",
			PurchaseDate:    date.MustParse("2024-05-16"),
			PurchaseChannel: "jingdong",
			Price:           M(5768.00, "CNY"),
			Currency:        "CNY",
			PaymentMethod:   "credit_card",
			WarrantyMonths:  12,
			WarrantyExpiry:  date.MustParse("2025-05-16"),
			Owner:           "self",
			Status:          "active",
			Location:        "carry",
			Frequency:       "daily",
			Notes:           "primary phone",
		},
	}
}

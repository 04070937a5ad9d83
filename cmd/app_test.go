package cmd

import (
	"testing"

	"github.com/equipage/equipage/date"
)

func TestRefDate(t *testing.T) {
	if got, err := refDate("2026-01-01"); err != nil || got != date.MustParse("2026-01-01") {
		t.Errorf("refDate(2026-01-01) = %v, %v", got, err)
	}
	// lenient single-digit form
	if got, err := refDate("2026-1-1"); err != nil || got != date.MustParse("2026-01-01") {
		t.Errorf("refDate(2026-1-1) = %v, %v", got, err)
	}
	if got, err := refDate(""); err != nil || got != date.Today() {
		t.Errorf("refDate(\"\") = %v, %v, want today", got, err)
	}
	if _, err := refDate("01/02/2026"); err == nil {
		t.Error("refDate should reject a non ISO date")
	}
}

package equipage

import (
	"github.com/equipage/equipage/date"
)

// CNY is a helper for test to create yuan money from const
func CNY(v float64) Money { return M(v, "CNY") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// D is a helper for test to parse a date from const
func D(s string) date.Date { return date.MustParse(s) }

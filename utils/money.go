package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is an exact monetary amount: integer minor units plus a currency
// code. Booking prices are still stored as the display strings the results
// page produced, but every aggregation goes through ParseMoney instead of
// ad hoc digit stripping.
type Money struct {
	Amount   int64  `json:"amount"` // minor units (agorot)
	Currency string `json:"currency"`
}

const DefaultCurrency = "ILS"

var currencySymbols = map[string]string{
	"₪": "ILS",
	"$": "USD",
	"€": "EUR",
}

// ParseMoney reads a free-form price string like "1,250 ₪", "1800",
// "1,250.50 ₪" or "$ 950". Thousands separators and whitespace are
// ignored; at most two decimal digits are honored. An empty or numberless
// string parses to zero in the default currency.
func ParseMoney(s string) Money {
	m := Money{Currency: DefaultCurrency}
	s = strings.TrimSpace(s)
	if s == "" {
		return m
	}

	for sym, code := range currencySymbols {
		if strings.Contains(s, sym) {
			m.Currency = code
			break
		}
	}

	var intPart, fracPart strings.Builder
	inFrac := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			if inFrac {
				fracPart.WriteRune(r)
			} else {
				intPart.WriteRune(r)
			}
		case r == '.':
			// a dot only starts the fraction when digits were already seen
			if intPart.Len() > 0 {
				inFrac = true
			}
		}
	}

	units, _ := strconv.ParseInt(intPart.String(), 10, 64)
	m.Amount = units * 100

	frac := fracPart.String()
	if len(frac) > 2 {
		frac = frac[:2]
	}
	if frac != "" {
		if len(frac) == 1 {
			frac += "0"
		}
		cents, _ := strconv.ParseInt(frac, 10, 64)
		m.Amount += cents
	}
	return m
}

// Units returns the whole-currency value, which is what the analytics
// dashboard reports ("1,250 ₪" contributes 1250).
func (m Money) Units() int64 {
	return m.Amount / 100
}

// Format renders the amount the way the site displays prices:
// thousands-separated whole units followed by the currency symbol.
func (m Money) Format() string {
	sym := "₪"
	for s, code := range currencySymbols {
		if code == m.Currency {
			sym = s
			break
		}
	}

	units := m.Amount / 100
	cents := m.Amount % 100
	intPart := strconv.FormatInt(units, 10)

	// insert commas every three digits
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	if cents != 0 {
		return fmt.Sprintf("%s.%02d %s", b.String(), cents, sym)
	}
	return b.String() + " " + sym
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoneyShekelString(t *testing.T) {
	m := ParseMoney("1,250 ₪")
	assert.Equal(t, int64(1250), m.Units())
	assert.Equal(t, "ILS", m.Currency)
}

func TestParseMoneyPlainNumber(t *testing.T) {
	m := ParseMoney("1800")
	assert.Equal(t, int64(1800), m.Units())
	assert.Equal(t, "ILS", m.Currency)
}

func TestParseMoneyEmpty(t *testing.T) {
	m := ParseMoney("")
	assert.Equal(t, int64(0), m.Amount)
	assert.Equal(t, "ILS", m.Currency)
}

func TestParseMoneyNoDigits(t *testing.T) {
	m := ParseMoney("לא נקבע")
	assert.Equal(t, int64(0), m.Amount)
}

func TestParseMoneyDecimals(t *testing.T) {
	m := ParseMoney("1,250.50 ₪")
	assert.Equal(t, int64(125050), m.Amount)
	assert.Equal(t, int64(1250), m.Units())
}

func TestParseMoneyDollar(t *testing.T) {
	m := ParseMoney("$ 950")
	assert.Equal(t, "USD", m.Currency)
	assert.Equal(t, int64(950), m.Units())
}

func TestFormatRoundTrip(t *testing.T) {
	m := ParseMoney("1,250 ₪")
	assert.Equal(t, "1,250 ₪", m.Format())
	assert.Equal(t, m, ParseMoney(m.Format()))
}

func TestFormatWithCents(t *testing.T) {
	m := Money{Amount: 125050, Currency: "ILS"}
	assert.Equal(t, "1,250.50 ₪", m.Format())
}

func TestFormatSmallAmount(t *testing.T) {
	m := Money{Amount: 95000, Currency: "ILS"}
	assert.Equal(t, "950 ₪", m.Format())
}

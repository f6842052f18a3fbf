package views

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		expected string
	}{
		{"1234.5", "USD", "$1,234.50"},
		{"0", "USD", "$0.00"},
		{"999.999", "USD", "$1,000.00"},
		{"-42.1", "USD", "-$42.10"},
		{"-0.001", "USD", "-$0.00"},
		{"-0.004", "USD", "-$0.00"},
		{"-0.005", "USD", "-$0.01"},
		{"-0.4", "JPY", "-¥0"},
		{"1234567.891", "", "$1,234,567.89"},
		{"100", "eur", "€100.00"},
		{"1500.5", "BRL", "R$1,500.50"},
		{"1234.5", "JPY", "¥1,235"},
		{"10", "CAD", "CA$10.00"},
		{"1234.5", "CHF", "CHF 1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.currency+" "+tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(decimal.RequireFromString(tt.amount), tt.currency))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 15, 2024", FormatDate("2024-01-15T10:30:00Z"))
	assert.Equal(t, "Mar 3, 2023", FormatDate("2023-03-03"))
	assert.Equal(t, "Dec 31, 2024", FormatDate("2024-12-31T23:59:59.123456Z"))
	assert.Equal(t, "not a date", FormatDate("not a date"))
	assert.Equal(t, "", FormatDate(""))
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "Jan 15, 2024, 10:30 AM", FormatDateTime("2024-01-15T10:30:00Z"))
	assert.Equal(t, "Jul 4, 2024, 09:05 PM", FormatDateTime("2024-07-04 21:05:00"))
	assert.Equal(t, "yesterday", FormatDateTime("yesterday"))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "bg-red-50 text-red-700", StatusClass("rejected"))
	assert.Equal(t, "bg-dark-100 text-dark-700", StatusClass("unknown-status"))
	assert.Equal(t, "bg-primary-50 text-primary-700", StatusClass("open"))
	assert.Equal(t, "bg-blue-50 text-blue-700", StatusClass("processing"))
}

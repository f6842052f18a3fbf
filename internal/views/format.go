package views

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"itapay-admin/internal/models"
)

// DefaultCurrency is used when an amount carries no currency code
const DefaultCurrency = "USD"

const (
	dateLayout     = "Jan 2, 2006"
	dateTimeLayout = "Jan 2, 2006, 03:04 PM"
)

type currencyFormat struct {
	symbol   string
	decimals int32
}

// en-US symbols for the currencies the backend settles in
var currencyFormats = map[string]currencyFormat{
	"USD": {"$", 2},
	"EUR": {"€", 2},
	"GBP": {"£", 2},
	"BRL": {"R$", 2},
	"CAD": {"CA$", 2},
	"AUD": {"A$", 2},
	"MXN": {"MX$", 2},
	"INR": {"₹", 2},
	"CNY": {"CN¥", 2},
	"JPY": {"¥", 0},
	"KRW": {"₩", 0},
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// FormatCurrency renders amount the way en-US renders a currency value,
// e.g. FormatCurrency(1234.5, "USD") == "$1,234.50".
func FormatCurrency(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrency
	}

	format, known := currencyFormats[code]
	if !known {
		format = currencyFormat{symbol: code + " ", decimals: 2}
	}

	// en-US keeps the sign of amounts that round to zero, e.g. -$0.00
	negative := amount.IsNegative()
	digits := amount.Abs().StringFixed(format.decimals)

	intPart, fracPart, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(format.symbol)
	b.WriteString(groupThousands(intPart))
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseTimestamp parses the timestamp shapes the backend emits
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a backend timestamp as "Jan 2, 2006".
// Values that do not parse are returned unchanged.
func FormatDate(value string) string {
	t, ok := ParseTimestamp(value)
	if !ok {
		return value
	}
	return t.Format(dateLayout)
}

// FormatDateTime renders a backend timestamp as "Jan 2, 2006, 03:04 PM"
func FormatDateTime(value string) string {
	t, ok := ParseTimestamp(value)
	if !ok {
		return value
	}
	return t.Format(dateTimeLayout)
}

// StatusClass returns the badge classes for any customer, account or transfer status
func StatusClass(status string) string {
	return models.StatusTone(status).Class()
}

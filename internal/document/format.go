package document

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Date profiles accepted in document.dateFormat. Anything else uses the
// German-style default.
var dateLayouts = map[string]string{
	"en-US": "01/02/2006",
	"en-GB": "02/01/2006",
	"iso":   "2006-01-02",
}

const defaultDateLayout = "02.01.2006"

// FormatDate renders t for the given locale profile. A zero time yields "".
func FormatDate(t time.Time, profile string) string {
	if t.IsZero() {
		return ""
	}
	layout, ok := dateLayouts[profile]
	if !ok {
		layout = defaultDateLayout
	}
	return t.Format(layout)
}

// FormatDatePtr is FormatDate for optional timestamps.
func FormatDatePtr(t *time.Time, profile string) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t, profile)
}

// FormatCurrency renders amount with two decimals and "," thousands
// separators. A single-rune symbol ($, €, £) is a prefix; a code such as
// "NOK" or "kr" is a suffix separated by a space.
func FormatCurrency(amount float64, symbol string) string {
	d := decimal.NewFromFloat(amount).Round(2)
	neg := d.IsNegative()
	number := groupThousands(d.Abs().StringFixed(2))

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	switch {
	case symbol == "":
		b.WriteString(number)
	case utf8.RuneCountInString(symbol) == 1:
		b.WriteString(symbol)
		b.WriteString(number)
	default:
		b.WriteString(number)
		b.WriteByte(' ')
		b.WriteString(symbol)
	}
	return b.String()
}

func groupThousands(fixed string) string {
	intPart, frac, _ := strings.Cut(fixed, ".")
	if len(intPart) <= 3 {
		return fixed
	}

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
	return b.String() + "." + frac
}

// FormatMinutes renders a duration in minutes as "2h 30m".
func FormatMinutes(total int) string {
	h, m := total/60, total%60
	switch {
	case h == 0:
		return strconv.Itoa(m) + "m"
	case m == 0:
		return strconv.Itoa(h) + "h"
	default:
		return strconv.Itoa(h) + "h " + strconv.Itoa(m) + "m"
	}
}

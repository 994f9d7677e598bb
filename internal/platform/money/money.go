// Package money pairs decimal amounts with ISO currencies.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func New(amount decimal.Decimal, cur currency.Unit) Money {
	return Money{Amount: amount, Currency: cur}
}

// ParseCurrency accepts an ISO 4217 code such as "USD".
func ParseCurrency(iso string) (currency.Unit, error) {
	cur, err := currency.ParseISO(iso)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("currency[%s] is not valid: %w", iso, err)
	}
	return cur, nil
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: %s and %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Format renders m with the currency symbol and the separators of tag. The
// amount is rounded to the currency's standard scale from its decimal digits,
// so large amounts keep every digit.
func (m Money) Format(tag language.Tag) string {
	p := message.NewPrinter(tag)
	group, point := separators(p)

	scale, _ := currency.Standard.Rounding(m.Currency)
	digits := m.Amount.Round(int32(scale)).StringFixed(int32(scale))

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	whole, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	b.WriteString(p.Sprint(currency.Symbol(m.Currency)))
	b.WriteString(" ")
	b.WriteString(sign)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(group)
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteString(point)
		b.WriteString(frac)
	}
	return b.String()
}

// separators reads the grouping and decimal separators of p from a sample
// number, falling back to "," and ".".
func separators(p *message.Printer) (group, point string) {
	sample := p.Sprint(number.Decimal(1234.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))

	rest, ok := strings.CutPrefix(sample, "1")
	if !ok {
		return ",", "."
	}
	rest, ok = strings.CutSuffix(rest, "5")
	if !ok {
		return ",", "."
	}
	group, point, ok = strings.Cut(rest, "234")
	if !ok || point == "" {
		return ",", "."
	}
	return group, point
}

func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency.String()
}

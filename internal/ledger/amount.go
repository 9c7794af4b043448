package ledger

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	errNotDecimal = errors.New("not a plain decimal")
)

// ParseAmount parses a strictly positive amount with at most 2 fractional digits.
func ParseAmount(text string) (decimal.Decimal, error) {
	amount, err := parseDecimal(text)
	if err != nil || !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// ParseRate parses an interest rate percentage and rounds it to 2 fractional
// digits. The rounded rate must lie in the open interval (0, 100).
func ParseRate(text string) (decimal.Decimal, error) {
	rate, err := parseDecimal(text)
	if err != nil {
		return decimal.Zero, ErrInvalidRate
	}

	rate = rate.Round(2)
	if !rate.IsPositive() || rate.GreaterThanOrEqual(hundred) {
		return decimal.Zero, ErrInvalidRate
	}
	return rate, nil
}

func parseDecimal(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.ContainsAny(text, "eE") {
		return decimal.Zero, errNotDecimal
	}
	return decimal.NewFromString(text)
}

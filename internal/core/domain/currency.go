package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingRate     = errors.New("no exchange rate for currency")
	ErrNonPositiveRate = errors.New("exchange rate must be positive")
)

// Currency is a 3-letter tag from the closed set supported by the business.
type Currency string

const (
	GNF Currency = "GNF" // base currency; every persisted amount is GNF
	USD Currency = "USD"
	EUR Currency = "EUR"
	XOF Currency = "XOF"
)

// SupportedCurrencies lists every currency tag a line may carry.
var SupportedCurrencies = []Currency{GNF, USD, EUR, XOF}

// IsSupported reports whether c belongs to the closed currency set.
func (c Currency) IsSupported() bool {
	switch c {
	case GNF, USD, EUR, XOF:
		return true
	}
	return false
}

// conversionScale is the fractional precision applied when a quotient is inexact.
const conversionScale = 8

// RateBook maps a currency to its value in GNF per one unit of that currency.
// The GNF rate is always 1 and need not be present in the map.
type RateBook map[Currency]decimal.Decimal

// Rate returns the GNF-per-unit rate for c, validating presence and positivity.
func (b RateBook) Rate(c Currency) (decimal.Decimal, error) {
	if c == GNF {
		return decimal.NewFromInt(1), nil
	}
	r, ok := b[c]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrMissingRate, c)
	}
	if r.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: rate for %s is %s", ErrNonPositiveRate, c, r)
	}
	return r, nil
}

// Convert translates amount from one currency to another through the GNF base.
// Amounts pass through unchanged when from == to. The final division is
// bank-rounded at 8 fractional digits when the quotient is inexact; all other
// arithmetic is exact.
func (b RateBook) Convert(amount decimal.Decimal, from, to Currency) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	fromRate, err := b.Rate(from)
	if err != nil {
		return decimal.Zero, err
	}
	gnf := amount.Mul(fromRate)
	if to == GNF {
		return gnf, nil
	}
	toRate, err := b.Rate(to)
	if err != nil {
		return decimal.Zero, err
	}
	return DivBank(gnf, toRate), nil
}

// Clone returns an independent copy of the rate book, used when snapshotting
// rates onto a new aggregate.
func (b RateBook) Clone() RateBook {
	cp := make(RateBook, len(b))
	for c, r := range b {
		cp[c] = r
	}
	return cp
}

// DivBank divides a by b with banker's rounding at 8 fractional digits.
// Callers must guarantee b is non-zero.
func DivBank(a, b decimal.Decimal) decimal.Decimal {
	return a.Div(b).RoundBank(conversionScale)
}

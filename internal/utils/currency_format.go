package utils

import (
	"github.com/shopspring/decimal"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
)

// CurrencyPrecision returns the display precision for a currency.
// GNF and XOF are quoted without minor units.
func CurrencyPrecision(currency domain.Currency) int32 {
	switch currency {
	case domain.GNF, domain.XOF:
		return 0
	default:
		return 2
	}
}

// FormatWithCurrencyPrecision formats an amount with the correct precision
// for a given currency.
// Example: amount 12.3456 in USD returns "12.35"
// Example: amount 12.3456 in GNF returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.Round(CurrencyPrecision(currency)).String()
}

package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
)

// FlattenRateBook splits a rate book into the per-currency columns the
// legacy schema stores. Absent entries come back as zero.
func FlattenRateBook(book domain.RateBook) (usd, eur, xof decimal.Decimal) {
	return book[domain.USD], book[domain.EUR], book[domain.XOF]
}

// ToDomainRateBook rebuilds a rate book from flattened columns. Zero columns
// are kept out of the book so missing rates stay distinguishable.
func ToDomainRateBook(usd, eur, xof decimal.Decimal) domain.RateBook {
	book := domain.RateBook{}
	if !usd.IsZero() {
		book[domain.USD] = usd
	}
	if !eur.IsZero() {
		book[domain.EUR] = eur
	}
	if !xof.IsZero() {
		book[domain.XOF] = xof
	}
	return book
}

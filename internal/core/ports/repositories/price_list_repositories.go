package repositories

import (
	"context"
	"time"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
)

// PriceListReader defines read operations for price list data
type PriceListReader interface {
	// FindActivePriceList returns the price list in force on the given date:
	// the latest start_date among active lists whose end_date is null or
	// covers the date. apperrors.ErrNotFound when no list applies.
	FindActivePriceList(ctx context.Context, date time.Time) (*domain.PriceList, error)
}

// PriceListWriter defines write operations for price list data
type PriceListWriter interface {
	// SavePriceList inserts or updates a price list and its items.
	SavePriceList(ctx context.Context, list domain.PriceList) error
}

// PriceListRepositoryFacade combines all price-list-related repository interfaces
type PriceListRepositoryFacade interface {
	PriceListReader
	PriceListWriter
}

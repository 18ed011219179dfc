package repositories

import (
	"context"
	"time"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
)

// OrderReader defines read operations for commercial order data
type OrderReader interface {
	// FindOrderByID retrieves an order with its clients and items.
	FindOrderByID(ctx context.Context, orderID string) (*domain.CommercialOrder, error)

	// ListValidatedOrders retrieves validated orders whose order date falls
	// within [start, end]. A nil bound leaves that side open.
	ListValidatedOrders(ctx context.Context, start, end *time.Time) ([]domain.CommercialOrder, error)
}

// OrderWriter defines write operations for commercial order data
type OrderWriter interface {
	// SaveOrder inserts or updates an order with its clients and items.
	// A duplicate order reference maps to apperrors.ErrDuplicate.
	SaveOrder(ctx context.Context, order domain.CommercialOrder) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}

package services

import (
	"context"
	"time"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/mkouyate/import_erp_app/internal/dto"
	"github.com/shopspring/decimal"
)

// OrderReaderSvc defines read operations for commercial order data
type OrderReaderSvc interface {
	// GetOrderByID retrieves an order with its clients and items.
	GetOrderByID(ctx context.Context, orderID string) (*domain.CommercialOrder, error)
}

// OrderWriterSvc defines write operations for commercial order data
type OrderWriterSvc interface {
	// CreateOrder persists a new draft order built from the request.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorUserID string) (*domain.CommercialOrder, error)
}

// OrderTotalsSvc defines the pure aggregation operations over orders
type OrderTotalsSvc interface {
	// OrderTotalGNF sums quantity x unit price over every non-rejected client.
	OrderTotalGNF(order domain.CommercialOrder) decimal.Decimal

	// ClientTotalGNF sums one client's items regardless of client status.
	ClientTotalGNF(client domain.OrderClient) decimal.Decimal
}

// OrderPricingSvc defines the unit price suggestion policy
type OrderPricingSvc interface {
	// SuggestUnitPrice applies the pricing ladder against an already-loaded
	// price list. list may be nil when no list is in force.
	SuggestUnitPrice(item domain.StockItem, list *domain.PriceList, fallback decimal.Decimal) decimal.Decimal

	// SuggestUnitPriceAt resolves the active price list for the date and
	// applies the same ladder.
	SuggestUnitPriceAt(ctx context.Context, item domain.StockItem, date time.Time, fallback decimal.Decimal) (decimal.Decimal, error)

	// SuggestUnitPriceByID loads the stock item and resolves the active
	// price list for the date, then applies the same ladder.
	SuggestUnitPriceByID(ctx context.Context, stockItemID string, date time.Time, fallback decimal.Decimal) (decimal.Decimal, error)
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
	OrderTotalsSvc
	OrderPricingSvc
}

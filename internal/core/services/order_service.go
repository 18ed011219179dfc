package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mkouyate/import_erp_app/internal/apperrors"
	"github.com/mkouyate/import_erp_app/internal/core/domain"
	portsrepo "github.com/mkouyate/import_erp_app/internal/core/ports/repositories"
	portssvc "github.com/mkouyate/import_erp_app/internal/core/ports/services"
	"github.com/mkouyate/import_erp_app/internal/dto"
)

var (
	ErrOrderNotValidated = errors.New("order is not validated")
)

// orderService aggregates commercial order totals and applies the unit price
// suggestion policy.
type orderService struct {
	orderRepo     portsrepo.OrderRepositoryFacade
	priceListRepo portsrepo.PriceListRepositoryFacade
	articleRepo   portsrepo.ArticleRepositoryFacade
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, priceListRepo portsrepo.PriceListRepositoryFacade, articleRepo portsrepo.ArticleRepositoryFacade) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo:     orderRepo,
		priceListRepo: priceListRepo,
		articleRepo:   articleRepo,
	}
}

// Ensure orderService implements the portssvc.OrderSvcFacade interface
var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// ClientTotalGNF sums quantity x unit price over one client's items,
// regardless of the client's status. Callers decide whether a rejected
// client's total is shown.
func (s *orderService) ClientTotalGNF(client domain.OrderClient) decimal.Decimal {
	total := decimal.Zero
	for _, item := range client.Items {
		total = total.Add(item.Quantity.Mul(item.UnitPriceGNF))
	}
	return total
}

// OrderTotalGNF sums the totals of every non-rejected client. Rejected
// clients are always excluded, whatever the caller's display path.
func (s *orderService) OrderTotalGNF(order domain.CommercialOrder) decimal.Decimal {
	total := decimal.Zero
	for _, client := range order.Clients {
		if client.IsRejected() {
			continue
		}
		total = total.Add(s.ClientTotalGNF(client))
	}
	return total
}

// SuggestUnitPrice applies the pricing ladder: price-list match (wholesale
// over retail), then the stock item's purchase price, then the caller's
// fallback, then zero.
func (s *orderService) SuggestUnitPrice(item domain.StockItem, list *domain.PriceList, fallback decimal.Decimal) decimal.Decimal {
	if list != nil {
		if entry := list.FindByName(item.Name); entry != nil {
			if entry.WholesalePriceGNF != nil {
				return *entry.WholesalePriceGNF
			}
			return entry.RetailPriceGNF
		}
	}
	if item.PurchasePriceGNF.IsPositive() {
		return item.PurchasePriceGNF
	}
	if fallback.IsPositive() {
		return fallback
	}
	return decimal.Zero
}

// SuggestUnitPriceAt resolves the price list in force on the date and applies
// the same ladder. No active list simply skips the first rung.
func (s *orderService) SuggestUnitPriceAt(ctx context.Context, item domain.StockItem, date time.Time, fallback decimal.Decimal) (decimal.Decimal, error) {
	list, err := s.priceListRepo.FindActivePriceList(ctx, date)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("failed to resolve active price list: %w", err)
		}
		list = nil
	}
	return s.SuggestUnitPrice(item, list, fallback), nil
}

// SuggestUnitPriceByID loads the stock item and applies the ladder for the
// price list in force on the date.
func (s *orderService) SuggestUnitPriceByID(ctx context.Context, stockItemID string, date time.Time, fallback decimal.Decimal) (decimal.Decimal, error) {
	item, err := s.articleRepo.FindStockItemByID(ctx, stockItemID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load stock item %s: %w", stockItemID, err)
	}
	return s.SuggestUnitPriceAt(ctx, *item, date, fallback)
}

// GetOrderByID retrieves an order with its clients and items.
func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*domain.CommercialOrder, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order in service: %w", err)
	}
	return order, nil
}

// CreateOrder validates the request and persists a new draft order.
// A duplicate reference surfaces as apperrors.ErrDuplicate from the repository.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorUserID string) (*domain.CommercialOrder, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	clientIDs := make([]string, len(req.Clients))
	itemIDs := make([][]string, len(req.Clients))
	for ci, client := range req.Clients {
		clientIDs[ci] = uuid.NewString()
		itemIDs[ci] = make([]string, len(client.Items))
		for ii := range client.Items {
			itemIDs[ci][ii] = uuid.NewString()
		}
	}
	order := req.ToDomain(uuid.NewString(), clientIDs, itemIDs)

	now := time.Now()
	order.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order in service: %w", err)
	}
	return &order, nil
}

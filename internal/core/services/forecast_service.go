package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
	portsrepo "github.com/mkouyate/import_erp_app/internal/core/ports/repositories"
	portssvc "github.com/mkouyate/import_erp_app/internal/core/ports/services"
	"github.com/mkouyate/import_erp_app/internal/dto"
)

// forecastService attributes validated orders onto active forecasts and
// rebuilds realization state on demand.
type forecastService struct {
	forecastRepo portsrepo.ForecastRepositoryFacade
	orderRepo    portsrepo.OrderRepositoryFacade
	logger       *slog.Logger
}

// NewForecastService creates a new forecast reconciliation service.
func NewForecastService(forecastRepo portsrepo.ForecastRepositoryFacade, orderRepo portsrepo.OrderRepositoryFacade, logger *slog.Logger) portssvc.ForecastSvcFacade {
	if logger == nil {
		logger = slog.Default()
	}
	return &forecastService{
		forecastRepo: forecastRepo,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

// Ensure forecastService implements the portssvc.ForecastSvcFacade interface
var _ portssvc.ForecastSvcFacade = (*forecastService)(nil)

// itemDelta records one increment applied to a forecast item so a failed
// persist can subtract it back.
type itemDelta struct {
	item     *domain.ForecastItem
	quantity decimal.Decimal
	valueGNF decimal.Decimal
}

// matchItems returns pointers to every forecast item referencing the stock item.
func matchItems(f *domain.Forecast, stockItemID string) []*domain.ForecastItem {
	var matches []*domain.ForecastItem
	for i := range f.Items {
		if f.Items[i].StockItemID == stockItemID {
			matches = append(matches, &f.Items[i])
		}
	}
	return matches
}

// applyOrder accumulates the order's non-rejected items onto the matching
// items of every active forecast covering the order date. An item matching
// more than one forecast line is logged and skipped rather than guessed at.
func (s *forecastService) applyOrder(order domain.CommercialOrder, forecasts []*domain.Forecast) ([]itemDelta, []*domain.Forecast) {
	var deltas []itemDelta
	var affected []*domain.Forecast
	for _, f := range forecasts {
		if !f.IsActive() || !f.Covers(order.OrderDate) {
			continue
		}
		touched := false
		for _, client := range order.Clients {
			if client.IsRejected() {
				continue
			}
			for _, item := range client.Items {
				matches := matchItems(f, item.StockItemID)
				if len(matches) == 0 {
					continue
				}
				if len(matches) > 1 {
					s.logger.Warn("Ambiguous stock item match in forecast, skipping item",
						slog.String("order_id", order.OrderID),
						slog.String("forecast_id", f.ForecastID),
						slog.String("stock_item_id", item.StockItemID),
						slog.Int("matches", len(matches)))
					continue
				}
				value := item.Quantity.Mul(item.UnitPriceGNF)
				matches[0].AddRealization(item.Quantity, value)
				deltas = append(deltas, itemDelta{item: matches[0], quantity: item.Quantity, valueGNF: value})
				touched = true
			}
		}
		if touched {
			f.RecomputeTotals()
			affected = append(affected, f)
		}
	}
	return deltas, affected
}

// revertDeltas subtracts previously applied increments after a failed persist
// so in-memory state matches storage again.
func revertDeltas(deltas []itemDelta, affected []*domain.Forecast) {
	for _, d := range deltas {
		d.item.RealizedQuantity = d.item.RealizedQuantity.Sub(d.quantity)
		d.item.RealizedValueGNF = d.item.RealizedValueGNF.Sub(d.valueGNF)
		d.item.RecomputeRealizationPct()
	}
	for _, f := range affected {
		f.RecomputeTotals()
	}
}

// Attribute adds one validated order onto the given forecasts and persists
// the affected forecasts as a single unit. Nothing is written when no
// forecast matches.
func (s *forecastService) Attribute(ctx context.Context, order domain.CommercialOrder, forecasts []*domain.Forecast) error {
	if !order.IsValidated() {
		return fmt.Errorf("%w: order %s has status %s", ErrOrderNotValidated, order.OrderID, order.Status)
	}

	deltas, affected := s.applyOrder(order, forecasts)
	if len(affected) == 0 {
		return nil
	}

	if err := s.forecastRepo.SaveRealization(ctx, affected); err != nil {
		revertDeltas(deltas, affected)
		return fmt.Errorf("failed to persist realization for order %s: %w", order.OrderID, err)
	}
	return nil
}

// AttributeOrder loads the order and the active forecasts covering its date,
// then delegates to Attribute.
func (s *forecastService) AttributeOrder(ctx context.Context, orderID string) error {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to load order %s: %w", orderID, err)
	}

	forecasts, err := s.forecastRepo.ListActiveForecastsCovering(ctx, order.OrderDate)
	if err != nil {
		return fmt.Errorf("failed to list forecasts covering %s: %w", order.OrderDate.Format(time.DateOnly), err)
	}
	return s.Attribute(ctx, *order, forecasts)
}

// Recalculate zeroes every active forecast's accumulators and replays the
// validated orders in [start, end]. The final state depends only on the set
// of orders, not on their processing sequence: every update is an addition
// and derived values are recomputed from accumulators alone. A failed order
// is rolled back and the run continues with the next one.
//
// Forecasts are loaded only after the reset: the reset advances each stored
// forecast version, and the version-guarded realization writes must start
// from the post-reset state.
func (s *forecastService) Recalculate(ctx context.Context, start, end *time.Time) (*domain.ReconciliationSummary, error) {
	if err := s.forecastRepo.ResetActiveRealization(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset realization accumulators: %w", err)
	}
	forecasts, err := s.forecastRepo.ListActiveForecasts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active forecasts: %w", err)
	}

	orders, err := s.orderRepo.ListValidatedOrders(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list validated orders: %w", err)
	}

	summary := &domain.ReconciliationSummary{RealizedValueGNF: decimal.Zero}
	affectedIDs := make(map[string]struct{})
	for _, order := range orders {
		deltas, affected := s.applyOrder(order, forecasts)
		if len(affected) == 0 {
			summary.OrdersProcessed++
			continue
		}
		if err := s.forecastRepo.SaveRealization(ctx, affected); err != nil {
			revertDeltas(deltas, affected)
			summary.OrdersFailed++
			s.logger.Error("Failed to persist realization, order rolled back",
				slog.String("order_id", order.OrderID),
				slog.String("error", err.Error()))
			continue
		}
		summary.OrdersProcessed++
		for _, d := range deltas {
			summary.RealizedValueGNF = summary.RealizedValueGNF.Add(d.valueGNF)
		}
		for _, f := range affected {
			affectedIDs[f.ForecastID] = struct{}{}
		}
	}
	summary.ForecastsAffected = len(affectedIDs)
	return summary, nil
}

// GetForecastByID retrieves a forecast with its items.
func (s *forecastService) GetForecastByID(ctx context.Context, forecastID string) (*domain.Forecast, error) {
	forecast, err := s.forecastRepo.FindForecastByID(ctx, forecastID)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast in service: %w", err)
	}
	return forecast, nil
}

// CreateForecast validates the request and persists a new draft forecast
// with zeroed accumulators and the rate snapshot attached.
func (s *forecastService) CreateForecast(ctx context.Context, req dto.CreateForecastRequest, creatorUserID string) (*domain.Forecast, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	itemIDs := make([]string, len(req.Items))
	for i := range itemIDs {
		itemIDs[i] = uuid.NewString()
	}
	forecast := req.ToDomain(uuid.NewString(), itemIDs)

	now := time.Now()
	forecast.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.forecastRepo.SaveForecast(ctx, forecast); err != nil {
		return nil, fmt.Errorf("failed to create forecast in service: %w", err)
	}
	return &forecast, nil
}

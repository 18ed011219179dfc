package services

import (
	"context"
	"time"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/mkouyate/import_erp_app/internal/dto"
)

// ForecastReaderSvc defines read operations for forecast data
type ForecastReaderSvc interface {
	// GetForecastByID retrieves a forecast with its items.
	GetForecastByID(ctx context.Context, forecastID string) (*domain.Forecast, error)
}

// ForecastWriterSvc defines write operations for forecast data
type ForecastWriterSvc interface {
	// CreateForecast persists a new draft forecast built from the request.
	CreateForecast(ctx context.Context, req dto.CreateForecastRequest, creatorUserID string) (*domain.Forecast, error)
}

// ForecastReconcilerSvc defines the reconciliation operations
type ForecastReconcilerSvc interface {
	// Attribute adds one validated order's realized quantities and values
	// onto the matching items of the given forecasts and persists the
	// affected forecasts as a single unit.
	Attribute(ctx context.Context, order domain.CommercialOrder, forecasts []*domain.Forecast) error

	// AttributeOrder loads the order and the active forecasts covering its
	// date, then delegates to Attribute.
	AttributeOrder(ctx context.Context, orderID string) error

	// Recalculate rebuilds every active forecast's accumulators from the
	// validated orders in [start, end]. Nil bounds leave that side open.
	Recalculate(ctx context.Context, start, end *time.Time) (*domain.ReconciliationSummary, error)
}

// ForecastSvcFacade combines all forecast-related service interfaces
type ForecastSvcFacade interface {
	ForecastReaderSvc
	ForecastWriterSvc
	ForecastReconcilerSvc
}

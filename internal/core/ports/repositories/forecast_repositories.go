package repositories

import (
	"context"
	"time"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
)

// ForecastReader defines read operations for forecast data
type ForecastReader interface {
	// FindForecastByID retrieves a forecast with its items.
	FindForecastByID(ctx context.Context, forecastID string) (*domain.Forecast, error)

	// ListActiveForecasts retrieves every forecast with active status.
	ListActiveForecasts(ctx context.Context) ([]*domain.Forecast, error)

	// ListActiveForecastsCovering retrieves active forecasts whose period
	// contains the given calendar date.
	ListActiveForecastsCovering(ctx context.Context, date time.Time) ([]*domain.Forecast, error)
}

// ForecastWriter defines write operations for forecast data
type ForecastWriter interface {
	// SaveForecast inserts or updates a forecast and its items.
	SaveForecast(ctx context.Context, forecast domain.Forecast) error

	// SaveRealization persists the realization accumulators and derived
	// totals of the given forecasts as a single atomic unit. Implementations
	// must either write all of them or none, and return
	// apperrors.ErrConflict when a forecast version no longer matches.
	SaveRealization(ctx context.Context, forecasts []*domain.Forecast) error

	// ResetActiveRealization zeroes the accumulators of every item belonging
	// to an active forecast.
	ResetActiveRealization(ctx context.Context) error
}

// ForecastRepositoryFacade combines all forecast-related repository interfaces
type ForecastRepositoryFacade interface {
	ForecastReader
	ForecastWriter
}

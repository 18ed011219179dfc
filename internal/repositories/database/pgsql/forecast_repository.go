package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkouyate/import_erp_app/internal/apperrors"
	"github.com/mkouyate/import_erp_app/internal/core/domain"
	portsrepo "github.com/mkouyate/import_erp_app/internal/core/ports/repositories"
	"github.com/mkouyate/import_erp_app/internal/models"
	"github.com/mkouyate/import_erp_app/internal/utils/mapping"
)

type PgxForecastRepository struct {
	BaseRepository
}

// newPgxForecastRepository creates a new repository for forecast data.
func newPgxForecastRepository(pool *pgxpool.Pool) portsrepo.ForecastRepositoryFacade {
	return &PgxForecastRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ForecastRepositoryFacade = (*PgxForecastRepository)(nil)

const forecastSelect = `
	SELECT forecast_id, name, start_date, end_date, status, currency_code,
	       rate_usd, rate_eur, rate_xof,
	       total_forecast_value_gnf, total_realized_value_gnf, version,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM forecasts`

// SaveForecast upserts the forecast header and replaces its items in one
// transaction.
func (r *PgxForecastRepository) SaveForecast(ctx context.Context, forecast domain.Forecast) error {
	modelForecast := mapping.ToModelForecast(forecast)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO forecasts (forecast_id, name, start_date, end_date, status, currency_code,
			rate_usd, rate_eur, rate_xof,
			total_forecast_value_gnf, total_realized_value_gnf, version,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (forecast_id) DO UPDATE SET
			name = EXCLUDED.name,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			status = EXCLUDED.status,
			currency_code = EXCLUDED.currency_code,
			rate_usd = EXCLUDED.rate_usd,
			rate_eur = EXCLUDED.rate_eur,
			rate_xof = EXCLUDED.rate_xof,
			total_forecast_value_gnf = EXCLUDED.total_forecast_value_gnf,
			total_realized_value_gnf = EXCLUDED.total_realized_value_gnf,
			version = EXCLUDED.version,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelForecast.ForecastID,
		modelForecast.Name,
		modelForecast.StartDate,
		modelForecast.EndDate,
		modelForecast.Status,
		modelForecast.Currency,
		modelForecast.RateUSD,
		modelForecast.RateEUR,
		modelForecast.RateXOF,
		modelForecast.TotalForecastValueGNF,
		modelForecast.TotalRealizedValueGNF,
		modelForecast.Version,
		modelForecast.CreatedAt,
		modelForecast.CreatedBy,
		modelForecast.LastUpdatedAt,
		modelForecast.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: forecast %s", apperrors.ErrDuplicate, modelForecast.Name)
		}
		return fmt.Errorf("failed to save forecast %s: %w", modelForecast.ForecastID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM forecast_items WHERE forecast_id = $1;`, modelForecast.ForecastID); err != nil {
		return fmt.Errorf("failed to clear items for forecast %s: %w", modelForecast.ForecastID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO forecast_items (forecast_item_id, forecast_id, stock_item_id,
			forecast_quantity, selling_price_gnf, realized_quantity, realized_value_gnf, realization_pct)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, item := range forecast.Items {
		modelItem := mapping.ToModelForecastItem(forecast.ForecastID, item)
		batch.Queue(itemQuery,
			modelItem.ForecastItemID,
			modelItem.ForecastID,
			modelItem.StockItemID,
			modelItem.ForecastQuantity,
			modelItem.SellingPriceGNF,
			modelItem.RealizedQuantity,
			modelItem.RealizedValueGNF,
			modelItem.RealizationPct,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert items for forecast %s: %w", modelForecast.ForecastID, err)
	}

	return r.Commit(ctx, tx)
}

// SaveRealization persists the realization accumulators and derived totals of
// the given forecasts in one transaction. Each header update is guarded by
// the version the caller loaded; any mismatch aborts the whole batch with
// apperrors.ErrConflict. On success every forecast's in-memory version is
// bumped to the stored one.
func (r *PgxForecastRepository) SaveRealization(ctx context.Context, forecasts []*domain.Forecast) error {
	if len(forecasts) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		UPDATE forecasts
		SET total_realized_value_gnf = $2, version = version + 1, last_updated_at = $3
		WHERE forecast_id = $1 AND version = $4;
	`
	itemQuery := `
		UPDATE forecast_items
		SET realized_quantity = $3, realized_value_gnf = $4, realization_pct = $5
		WHERE forecast_id = $1 AND forecast_item_id = $2;
	`
	now := time.Now().UTC()
	for _, forecast := range forecasts {
		tag, err := tx.Exec(ctx, headerQuery,
			forecast.ForecastID,
			forecast.TotalRealizedValueGNF,
			now,
			forecast.Version,
		)
		if err != nil {
			return fmt.Errorf("failed to update forecast %s: %w", forecast.ForecastID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: forecast %s version %d", apperrors.ErrConflict, forecast.ForecastID, forecast.Version)
		}

		batch := &pgx.Batch{}
		for _, item := range forecast.Items {
			batch.Queue(itemQuery,
				forecast.ForecastID,
				item.ForecastItemID,
				item.RealizedQuantity,
				item.RealizedValueGNF,
				item.RealizationPct,
			)
		}
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to update items for forecast %s: %w", forecast.ForecastID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return err
	}

	for _, forecast := range forecasts {
		forecast.Version++
	}
	return nil
}

// ResetActiveRealization zeroes the accumulators of every active forecast
// and its items.
func (r *PgxForecastRepository) ResetActiveRealization(ctx context.Context) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	itemQuery := `
		UPDATE forecast_items
		SET realized_quantity = 0, realized_value_gnf = 0, realization_pct = 0
		WHERE forecast_id IN (SELECT forecast_id FROM forecasts WHERE status = $1);
	`
	if _, err := tx.Exec(ctx, itemQuery, string(domain.ForecastActive)); err != nil {
		return fmt.Errorf("failed to reset forecast items: %w", err)
	}

	headerQuery := `
		UPDATE forecasts
		SET total_realized_value_gnf = 0, version = version + 1, last_updated_at = $2
		WHERE status = $1;
	`
	if _, err := tx.Exec(ctx, headerQuery, string(domain.ForecastActive), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to reset forecasts: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindForecastByID retrieves a forecast with its items.
func (r *PgxForecastRepository) FindForecastByID(ctx context.Context, forecastID string) (*domain.Forecast, error) {
	query := forecastSelect + ` WHERE forecast_id = $1;`
	var modelForecast models.Forecast
	err := r.Pool.QueryRow(ctx, query, forecastID).Scan(forecastScanDest(&modelForecast)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find forecast %s: %w", forecastID, err)
	}

	items, err := r.findItems(ctx, []string{forecastID})
	if err != nil {
		return nil, err
	}

	domainForecast := mapping.ToDomainForecast(modelForecast, items[forecastID])
	return &domainForecast, nil
}

// ListActiveForecasts retrieves every forecast with active status.
func (r *PgxForecastRepository) ListActiveForecasts(ctx context.Context) ([]*domain.Forecast, error) {
	query := forecastSelect + ` WHERE status = $1 ORDER BY start_date;`
	return r.listForecasts(ctx, query, string(domain.ForecastActive))
}

// ListActiveForecastsCovering retrieves active forecasts whose period
// contains the given calendar date.
func (r *PgxForecastRepository) ListActiveForecastsCovering(ctx context.Context, date time.Time) ([]*domain.Forecast, error) {
	query := forecastSelect + ` WHERE status = $1 AND start_date::date <= $2::date AND end_date::date >= $2::date ORDER BY start_date;`
	return r.listForecasts(ctx, query, string(domain.ForecastActive), date)
}

func (r *PgxForecastRepository) listForecasts(ctx context.Context, query string, args ...any) ([]*domain.Forecast, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query forecasts: %w", err)
	}
	defer rows.Close()

	modelForecasts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Forecast, error) {
		var forecast models.Forecast
		err := row.Scan(forecastScanDest(&forecast)...)
		return forecast, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan forecasts: %w", err)
	}

	forecastIDs := make([]string, 0, len(modelForecasts))
	for _, m := range modelForecasts {
		forecastIDs = append(forecastIDs, m.ForecastID)
	}
	itemsByForecast, err := r.findItems(ctx, forecastIDs)
	if err != nil {
		return nil, err
	}

	domainForecasts := make([]*domain.Forecast, 0, len(modelForecasts))
	for _, m := range modelForecasts {
		d := mapping.ToDomainForecast(m, itemsByForecast[m.ForecastID])
		domainForecasts = append(domainForecasts, &d)
	}
	return domainForecasts, nil
}

func (r *PgxForecastRepository) findItems(ctx context.Context, forecastIDs []string) (map[string][]models.ForecastItem, error) {
	itemsByForecast := make(map[string][]models.ForecastItem, len(forecastIDs))
	if len(forecastIDs) == 0 {
		return itemsByForecast, nil
	}

	query := `
		SELECT forecast_item_id, forecast_id, stock_item_id,
		       forecast_quantity, selling_price_gnf, realized_quantity, realized_value_gnf, realization_pct
		FROM forecast_items
		WHERE forecast_id = ANY($1)
		ORDER BY forecast_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, forecastIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query forecast items: %w", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ForecastItem, error) {
		var item models.ForecastItem
		err := row.Scan(
			&item.ForecastItemID,
			&item.ForecastID,
			&item.StockItemID,
			&item.ForecastQuantity,
			&item.SellingPriceGNF,
			&item.RealizedQuantity,
			&item.RealizedValueGNF,
			&item.RealizationPct,
		)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan forecast items: %w", err)
	}

	for _, item := range modelItems {
		itemsByForecast[item.ForecastID] = append(itemsByForecast[item.ForecastID], item)
	}
	return itemsByForecast, nil
}

func forecastScanDest(m *models.Forecast) []any {
	return []any{
		&m.ForecastID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.Currency,
		&m.RateUSD,
		&m.RateEUR,
		&m.RateXOF,
		&m.TotalForecastValueGNF,
		&m.TotalRealizedValueGNF,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	}
}

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

type PgxPriceListRepository struct {
	BaseRepository
}

// newPgxPriceListRepository creates a new repository for price list data.
func newPgxPriceListRepository(pool *pgxpool.Pool) portsrepo.PriceListRepositoryFacade {
	return &PgxPriceListRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PriceListRepositoryFacade = (*PgxPriceListRepository)(nil)

// SavePriceList upserts the price list header and replaces its items in one
// transaction.
func (r *PgxPriceListRepository) SavePriceList(ctx context.Context, list domain.PriceList) error {
	modelList := mapping.ToModelPriceList(list)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO price_lists (price_list_id, name, start_date, end_date, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (price_list_id) DO UPDATE SET
			name = EXCLUDED.name,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelList.PriceListID,
		modelList.Name,
		modelList.StartDate,
		modelList.EndDate,
		modelList.IsActive,
		modelList.CreatedAt,
		modelList.CreatedBy,
		modelList.LastUpdatedAt,
		modelList.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: price list %s", apperrors.ErrDuplicate, modelList.Name)
		}
		return fmt.Errorf("failed to save price list %s: %w", modelList.PriceListID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM price_list_items WHERE price_list_id = $1;`, modelList.PriceListID); err != nil {
		return fmt.Errorf("failed to clear items for price list %s: %w", modelList.PriceListID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO price_list_items (price_list_item_id, price_list_id, product_name, wholesale_price_gnf, retail_price_gnf)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, item := range list.Items {
		modelItem := mapping.ToModelPriceListItem(list.PriceListID, item)
		batch.Queue(itemQuery,
			modelItem.PriceListItemID,
			modelItem.PriceListID,
			modelItem.ProductName,
			modelItem.WholesalePriceGNF,
			modelItem.RetailPriceGNF,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert items for price list %s: %w", modelList.PriceListID, err)
	}

	return r.Commit(ctx, tx)
}

// FindActivePriceList returns the price list in force on the given date:
// the latest start_date among active lists covering the date.
func (r *PgxPriceListRepository) FindActivePriceList(ctx context.Context, date time.Time) (*domain.PriceList, error) {
	query := `
		SELECT price_list_id, name, start_date, end_date, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM price_lists
		WHERE is_active = TRUE
		  AND start_date::date <= $1::date
		  AND (end_date IS NULL OR end_date::date >= $1::date)
		ORDER BY start_date DESC
		LIMIT 1;
	`
	var modelList models.PriceList
	err := r.Pool.QueryRow(ctx, query, date).Scan(
		&modelList.PriceListID,
		&modelList.Name,
		&modelList.StartDate,
		&modelList.EndDate,
		&modelList.IsActive,
		&modelList.CreatedAt,
		&modelList.CreatedBy,
		&modelList.LastUpdatedAt,
		&modelList.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active price list: %w", err)
	}

	itemQuery := `
		SELECT price_list_item_id, price_list_id, product_name, wholesale_price_gnf, retail_price_gnf
		FROM price_list_items
		WHERE price_list_id = $1
		ORDER BY product_name;
	`
	rows, err := r.Pool.Query(ctx, itemQuery, modelList.PriceListID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for price list %s: %w", modelList.PriceListID, err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PriceListItem, error) {
		var item models.PriceListItem
		err := row.Scan(
			&item.PriceListItemID,
			&item.PriceListID,
			&item.ProductName,
			&item.WholesalePriceGNF,
			&item.RetailPriceGNF,
		)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan items for price list %s: %w", modelList.PriceListID, err)
	}

	domainList := mapping.ToDomainPriceList(modelList, modelItems)
	return &domainList, nil
}

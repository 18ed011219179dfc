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

type PgxOrderRepository struct {
	BaseRepository
}

// newPgxOrderRepository creates a new repository for commercial order data.
func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

// SaveOrder upserts the order header and replaces its clients and items in
// one transaction.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.CommercialOrder) error {
	modelOrder := mapping.ToModelOrder(order)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO commercial_orders (order_id, reference, order_date, status, validated_by,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (order_id) DO UPDATE SET
			reference = EXCLUDED.reference,
			order_date = EXCLUDED.order_date,
			status = EXCLUDED.status,
			validated_by = EXCLUDED.validated_by,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelOrder.OrderID,
		modelOrder.Reference,
		modelOrder.OrderDate,
		modelOrder.Status,
		modelOrder.ValidatedBy,
		modelOrder.CreatedAt,
		modelOrder.CreatedBy,
		modelOrder.LastUpdatedAt,
		modelOrder.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: order reference %s", apperrors.ErrDuplicate, modelOrder.Reference)
		}
		return fmt.Errorf("failed to save order %s: %w", modelOrder.OrderID, err)
	}

	// Clients and items are edited as a unit with the header; replace them.
	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_client_id IN (SELECT order_client_id FROM order_clients WHERE order_id = $1);`, modelOrder.OrderID); err != nil {
		return fmt.Errorf("failed to clear items for order %s: %w", modelOrder.OrderID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM order_clients WHERE order_id = $1;`, modelOrder.OrderID); err != nil {
		return fmt.Errorf("failed to clear clients for order %s: %w", modelOrder.OrderID, err)
	}

	batch := &pgx.Batch{}
	clientQuery := `
		INSERT INTO order_clients (order_client_id, order_id, name, phone, payment_type,
			status, rejection_reason, rejected_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	itemQuery := `
		INSERT INTO order_items (order_item_id, order_client_id, stock_item_id, quantity, unit_price_gnf)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, client := range order.Clients {
		modelClient := mapping.ToModelOrderClient(order.OrderID, client)
		batch.Queue(clientQuery,
			modelClient.OrderClientID,
			modelClient.OrderID,
			modelClient.Name,
			modelClient.Phone,
			modelClient.PaymentType,
			modelClient.Status,
			modelClient.RejectionReason,
			modelClient.RejectedBy,
		)
		for _, item := range client.Items {
			modelItem := mapping.ToModelOrderItem(client.OrderClientID, item)
			batch.Queue(itemQuery,
				modelItem.OrderItemID,
				modelItem.OrderClientID,
				modelItem.StockItemID,
				modelItem.Quantity,
				modelItem.UnitPriceGNF,
			)
		}
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert clients for order %s: %w", modelOrder.OrderID, err)
	}

	return r.Commit(ctx, tx)
}

// FindOrderByID retrieves an order with its clients and items.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.CommercialOrder, error) {
	query := `
		SELECT order_id, reference, order_date, status, validated_by,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM commercial_orders
		WHERE order_id = $1;
	`
	var modelOrder models.CommercialOrder
	err := r.Pool.QueryRow(ctx, query, orderID).Scan(
		&modelOrder.OrderID,
		&modelOrder.Reference,
		&modelOrder.OrderDate,
		&modelOrder.Status,
		&modelOrder.ValidatedBy,
		&modelOrder.CreatedAt,
		&modelOrder.CreatedBy,
		&modelOrder.LastUpdatedAt,
		&modelOrder.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}

	orders, err := r.attachClients(ctx, []models.CommercialOrder{modelOrder})
	if err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// ListValidatedOrders retrieves validated orders whose order date falls
// within [start, end]. A nil bound leaves that side open.
func (r *PgxOrderRepository) ListValidatedOrders(ctx context.Context, start, end *time.Time) ([]domain.CommercialOrder, error) {
	query := `
		SELECT order_id, reference, order_date, status, validated_by,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM commercial_orders
		WHERE status = $1
		  AND ($2::timestamptz IS NULL OR order_date::date >= $2::date)
		  AND ($3::timestamptz IS NULL OR order_date::date <= $3::date)
		ORDER BY order_date;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.OrderValidated), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query validated orders: %w", err)
	}
	defer rows.Close()

	modelOrders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CommercialOrder, error) {
		var order models.CommercialOrder
		err := row.Scan(
			&order.OrderID,
			&order.Reference,
			&order.OrderDate,
			&order.Status,
			&order.ValidatedBy,
			&order.CreatedAt,
			&order.CreatedBy,
			&order.LastUpdatedAt,
			&order.LastUpdatedBy,
		)
		return order, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan validated orders: %w", err)
	}

	return r.attachClients(ctx, modelOrders)
}

// attachClients loads clients and items for the given order headers and
// assembles the domain aggregates.
func (r *PgxOrderRepository) attachClients(ctx context.Context, modelOrders []models.CommercialOrder) ([]domain.CommercialOrder, error) {
	if len(modelOrders) == 0 {
		return []domain.CommercialOrder{}, nil
	}

	orderIDs := make([]string, 0, len(modelOrders))
	for _, o := range modelOrders {
		orderIDs = append(orderIDs, o.OrderID)
	}

	clientQuery := `
		SELECT order_client_id, order_id, name, phone, payment_type, status, rejection_reason, rejected_by
		FROM order_clients
		WHERE order_id = ANY($1)
		ORDER BY order_client_id;
	`
	rows, err := r.Pool.Query(ctx, clientQuery, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query order clients: %w", err)
	}
	defer rows.Close()

	modelClients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.OrderClient, error) {
		var client models.OrderClient
		err := row.Scan(
			&client.OrderClientID,
			&client.OrderID,
			&client.Name,
			&client.Phone,
			&client.PaymentType,
			&client.Status,
			&client.RejectionReason,
			&client.RejectedBy,
		)
		return client, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan order clients: %w", err)
	}

	clientIDs := make([]string, 0, len(modelClients))
	clientsByOrder := make(map[string][]models.OrderClient, len(modelOrders))
	for _, c := range modelClients {
		clientIDs = append(clientIDs, c.OrderClientID)
		clientsByOrder[c.OrderID] = append(clientsByOrder[c.OrderID], c)
	}

	itemsByClient := make(map[string][]models.OrderItem, len(modelClients))
	if len(clientIDs) > 0 {
		itemQuery := `
			SELECT order_item_id, order_client_id, stock_item_id, quantity, unit_price_gnf
			FROM order_items
			WHERE order_client_id = ANY($1)
			ORDER BY order_item_id;
		`
		itemRows, err := r.Pool.Query(ctx, itemQuery, clientIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to query order items: %w", err)
		}
		defer itemRows.Close()

		modelItems, err := pgx.CollectRows(itemRows, func(row pgx.CollectableRow) (models.OrderItem, error) {
			var item models.OrderItem
			err := row.Scan(
				&item.OrderItemID,
				&item.OrderClientID,
				&item.StockItemID,
				&item.Quantity,
				&item.UnitPriceGNF,
			)
			return item, err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan order items: %w", err)
		}
		for _, item := range modelItems {
			itemsByClient[item.OrderClientID] = append(itemsByClient[item.OrderClientID], item)
		}
	}

	domainOrders := make([]domain.CommercialOrder, 0, len(modelOrders))
	for _, m := range modelOrders {
		domainOrders = append(domainOrders, mapping.ToDomainOrder(m, clientsByOrder[m.OrderID], itemsByClient))
	}
	return domainOrders, nil
}

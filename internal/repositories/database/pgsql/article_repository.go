package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkouyate/import_erp_app/internal/apperrors"
	"github.com/mkouyate/import_erp_app/internal/core/domain"
	portsrepo "github.com/mkouyate/import_erp_app/internal/core/ports/repositories"
	"github.com/mkouyate/import_erp_app/internal/models"
	"github.com/mkouyate/import_erp_app/internal/utils/mapping"
)

type PgxArticleRepository struct {
	BaseRepository
}

// newPgxArticleRepository creates a new repository for catalogue data.
func newPgxArticleRepository(pool *pgxpool.Pool) portsrepo.ArticleRepositoryFacade {
	return &PgxArticleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ArticleRepositoryFacade = (*PgxArticleRepository)(nil)

// SaveArticle inserts or updates an article.
func (r *PgxArticleRepository) SaveArticle(ctx context.Context, article domain.Article) error {
	modelArticle := mapping.ToModelArticle(article)

	query := `
		INSERT INTO articles (article_id, name, unit_mass_kg, purchase_price, currency_code, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (article_id) DO UPDATE SET
			name = EXCLUDED.name,
			unit_mass_kg = EXCLUDED.unit_mass_kg,
			purchase_price = EXCLUDED.purchase_price,
			currency_code = EXCLUDED.currency_code,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelArticle.ArticleID,
		modelArticle.Name,
		modelArticle.UnitMassKg,
		modelArticle.PurchasePrice,
		modelArticle.Currency,
		modelArticle.IsActive,
		modelArticle.CreatedAt,
		modelArticle.CreatedBy,
		modelArticle.LastUpdatedAt,
		modelArticle.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: article %s", apperrors.ErrDuplicate, modelArticle.Name)
		}
		return fmt.Errorf("failed to save article %s: %w", modelArticle.ArticleID, err)
	}
	return nil
}

// FindArticleByID retrieves an article by its identifier.
func (r *PgxArticleRepository) FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	query := `
		SELECT article_id, name, unit_mass_kg, purchase_price, currency_code, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM articles
		WHERE article_id = $1;
	`
	var modelArticle models.Article
	err := r.Pool.QueryRow(ctx, query, articleID).Scan(
		&modelArticle.ArticleID,
		&modelArticle.Name,
		&modelArticle.UnitMassKg,
		&modelArticle.PurchasePrice,
		&modelArticle.Currency,
		&modelArticle.IsActive,
		&modelArticle.CreatedAt,
		&modelArticle.CreatedBy,
		&modelArticle.LastUpdatedAt,
		&modelArticle.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find article %s: %w", articleID, err)
	}

	domainArticle := mapping.ToDomainArticle(modelArticle)
	return &domainArticle, nil
}

// ListActiveArticles retrieves every active catalogue article.
func (r *PgxArticleRepository) ListActiveArticles(ctx context.Context) ([]domain.Article, error) {
	query := `
		SELECT article_id, name, unit_mass_kg, purchase_price, currency_code, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM articles
		WHERE is_active = TRUE
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	modelArticles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Article, error) {
		var article models.Article
		err := row.Scan(
			&article.ArticleID,
			&article.Name,
			&article.UnitMassKg,
			&article.PurchasePrice,
			&article.Currency,
			&article.IsActive,
			&article.CreatedAt,
			&article.CreatedBy,
			&article.LastUpdatedAt,
			&article.LastUpdatedBy,
		)
		return article, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan articles: %w", err)
	}

	domainArticles := make([]domain.Article, 0, len(modelArticles))
	for _, m := range modelArticles {
		domainArticles = append(domainArticles, mapping.ToDomainArticle(m))
	}
	return domainArticles, nil
}

// FindStockItemByID retrieves a stock item by its identifier.
func (r *PgxArticleRepository) FindStockItemByID(ctx context.Context, stockItemID string) (*domain.StockItem, error) {
	query := stockItemSelect + ` WHERE stock_item_id = $1;`
	return r.scanStockItem(ctx, query, stockItemID)
}

// FindStockItemByName resolves a stock item by case-insensitive name match.
func (r *PgxArticleRepository) FindStockItemByName(ctx context.Context, name string) (*domain.StockItem, error) {
	query := stockItemSelect + ` WHERE LOWER(name) = LOWER($1);`
	return r.scanStockItem(ctx, query, name)
}

const stockItemSelect = `
	SELECT stock_item_id, sku, name, purchase_price_gnf, is_active,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM stock_items`

func (r *PgxArticleRepository) scanStockItem(ctx context.Context, query string, arg any) (*domain.StockItem, error) {
	var modelItem models.StockItem
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelItem.StockItemID,
		&modelItem.SKU,
		&modelItem.Name,
		&modelItem.PurchasePriceGNF,
		&modelItem.IsActive,
		&modelItem.CreatedAt,
		&modelItem.CreatedBy,
		&modelItem.LastUpdatedAt,
		&modelItem.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stock item: %w", err)
	}

	domainItem := mapping.ToDomainStockItem(modelItem)
	return &domainItem, nil
}

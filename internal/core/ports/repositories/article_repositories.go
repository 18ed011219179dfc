package repositories

import (
	"context"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
)

// ArticleReader defines read operations for catalogue data
type ArticleReader interface {
	// FindArticleByID retrieves an article by its identifier.
	FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error)

	// ListActiveArticles retrieves every active catalogue article.
	ListActiveArticles(ctx context.Context) ([]domain.Article, error)

	// FindStockItemByName resolves a stock item by case-insensitive name match.
	// This is the only place name matching is permitted; the core never
	// relies on name equality at runtime.
	FindStockItemByName(ctx context.Context, name string) (*domain.StockItem, error)

	// FindStockItemByID retrieves a stock item by its identifier.
	FindStockItemByID(ctx context.Context, stockItemID string) (*domain.StockItem, error)
}

// ArticleWriter defines write operations for catalogue data
type ArticleWriter interface {
	// SaveArticle inserts or updates an article.
	SaveArticle(ctx context.Context, article domain.Article) error
}

// ArticleRepositoryFacade combines all catalogue-related repository interfaces
type ArticleRepositoryFacade interface {
	ArticleReader
	ArticleWriter
}

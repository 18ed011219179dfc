package mapping

import (
	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/mkouyate/import_erp_app/internal/models"
)

// ToModelArticle converts a domain Article to a model Article
func ToModelArticle(d domain.Article) models.Article {
	return models.Article{
		ArticleID:     d.ArticleID,
		Name:          d.Name,
		UnitMassKg:    d.UnitMassKg,
		PurchasePrice: d.PurchasePrice,
		Currency:      string(d.Currency),
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainArticle converts a model Article to a domain Article
func ToDomainArticle(m models.Article) domain.Article {
	return domain.Article{
		ArticleID:     m.ArticleID,
		Name:          m.Name,
		UnitMassKg:    m.UnitMassKg,
		PurchasePrice: m.PurchasePrice,
		Currency:      domain.Currency(m.Currency),
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelStockItem converts a domain StockItem to a model StockItem
func ToModelStockItem(d domain.StockItem) models.StockItem {
	return models.StockItem{
		StockItemID:      d.StockItemID,
		SKU:              d.SKU,
		Name:             d.Name,
		PurchasePriceGNF: d.PurchasePriceGNF,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStockItem converts a model StockItem to a domain StockItem
func ToDomainStockItem(m models.StockItem) domain.StockItem {
	return domain.StockItem{
		StockItemID:      m.StockItemID,
		SKU:              m.SKU,
		Name:             m.Name,
		PurchasePriceGNF: m.PurchasePriceGNF,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

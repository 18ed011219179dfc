package models

import "github.com/shopspring/decimal"

// Article is the persistence row for a catalogue article.
type Article struct {
	ArticleID     string          `json:"articleID"` // Primary Key (UUID)
	Name          string          `json:"name"`
	UnitMassKg    decimal.Decimal `json:"unitMassKg"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Currency      string          `json:"currency"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}

// StockItem is the persistence row for a stock-keeping item.
type StockItem struct {
	StockItemID      string          `json:"stockItemID"` // Primary Key (UUID)
	SKU              string          `json:"sku"`
	Name             string          `json:"name"`
	PurchasePriceGNF decimal.Decimal `json:"purchasePriceGNF"`
	IsActive         bool            `json:"isActive"`
	AuditFields
}

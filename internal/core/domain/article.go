package domain

import "github.com/shopspring/decimal"

// Article is the catalogue entity used for purchasing and profitability.
// It is distinct from StockItem (the stock-keeping entity); the two are
// matched by case-insensitive name at the persistence boundary only.
type Article struct {
	ArticleID     string          `json:"articleID"`
	Name          string          `json:"name"`
	UnitMassKg    decimal.Decimal `json:"unitMassKg"`    // >= 0
	PurchasePrice decimal.Decimal `json:"purchasePrice"` // in Currency
	Currency      Currency        `json:"currency"`      // source currency of PurchasePrice
	IsActive      bool            `json:"isActive"`
	AuditFields
}

// StockItem is the stock-keeping entity referenced by orders and forecasts.
type StockItem struct {
	StockItemID      string          `json:"stockItemID"`
	SKU              string          `json:"sku"`
	Name             string          `json:"name"`
	PurchasePriceGNF decimal.Decimal `json:"purchasePriceGNF"` // zero when unknown
	IsActive         bool            `json:"isActive"`
	AuditFields
}

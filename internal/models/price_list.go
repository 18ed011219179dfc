package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceList is the persistence row for a price list header.
type PriceList struct {
	PriceListID string     `json:"priceListID"` // Primary Key (UUID)
	Name        string     `json:"name"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"` // nil means open-ended
	IsActive    bool       `json:"isActive"`
	AuditFields
}

// PriceListItem is the persistence row for one quoted product.
type PriceListItem struct {
	PriceListItemID   string           `json:"priceListItemID"` // Primary Key (UUID)
	PriceListID       string           `json:"priceListID"`
	ProductName       string           `json:"productName"`
	WholesalePriceGNF *decimal.Decimal `json:"wholesalePriceGNF,omitempty"`
	RetailPriceGNF    decimal.Decimal  `json:"retailPriceGNF"`
}

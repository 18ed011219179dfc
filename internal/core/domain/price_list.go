package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PriceListItem is one named product entry on a price list. The wholesale
// price is optional; nil means the list only quotes retail for the product.
type PriceListItem struct {
	PriceListItemID   string           `json:"priceListItemID"`
	ProductName       string           `json:"productName"`
	WholesalePriceGNF *decimal.Decimal `json:"wholesalePriceGNF,omitempty"`
	RetailPriceGNF    decimal.Decimal  `json:"retailPriceGNF"`
}

// PriceList is a dated commercial price schedule. EndDate nil means open-ended.
type PriceList struct {
	PriceListID string          `json:"priceListID"`
	Name        string          `json:"name"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	IsActive    bool            `json:"isActive"`
	Items       []PriceListItem `json:"items"`
	AuditFields
}

// ActiveAt reports whether the list applies on the given date.
func (p PriceList) ActiveAt(d time.Time) bool {
	if !p.IsActive {
		return false
	}
	day := dateOnly(d)
	if day.Before(dateOnly(p.StartDate)) {
		return false
	}
	if p.EndDate != nil && day.After(dateOnly(*p.EndDate)) {
		return false
	}
	return true
}

// FindByName returns the entry whose product name matches exactly, ignoring
// case, or nil when the list does not quote the product.
func (p PriceList) FindByName(name string) *PriceListItem {
	for i := range p.Items {
		if strings.EqualFold(p.Items[i].ProductName, name) {
			return &p.Items[i]
		}
	}
	return nil
}

package mapping

import (
	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/mkouyate/import_erp_app/internal/models"
)

// ToModelPriceList converts a domain PriceList to a model PriceList
func ToModelPriceList(d domain.PriceList) models.PriceList {
	return models.PriceList{
		PriceListID: d.PriceListID,
		Name:        d.Name,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToModelPriceListItem converts a domain PriceListItem to a model PriceListItem
func ToModelPriceListItem(priceListID string, d domain.PriceListItem) models.PriceListItem {
	return models.PriceListItem{
		PriceListItemID:   d.PriceListItemID,
		PriceListID:       priceListID,
		ProductName:       d.ProductName,
		WholesalePriceGNF: d.WholesalePriceGNF,
		RetailPriceGNF:    d.RetailPriceGNF,
	}
}

// ToDomainPriceList converts a model PriceList and its items to a domain PriceList
func ToDomainPriceList(m models.PriceList, items []models.PriceListItem) domain.PriceList {
	d := domain.PriceList{
		PriceListID: m.PriceListID,
		Name:        m.Name,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	d.Items = make([]domain.PriceListItem, 0, len(items))
	for _, item := range items {
		d.Items = append(d.Items, domain.PriceListItem{
			PriceListItemID:   item.PriceListItemID,
			ProductName:       item.ProductName,
			WholesalePriceGNF: item.WholesalePriceGNF,
			RetailPriceGNF:    item.RetailPriceGNF,
		})
	}
	return d
}

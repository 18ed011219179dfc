package mapping

import (
	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/mkouyate/import_erp_app/internal/models"
)

// ToModelOrder converts a domain CommercialOrder to a model CommercialOrder
func ToModelOrder(d domain.CommercialOrder) models.CommercialOrder {
	return models.CommercialOrder{
		OrderID:     d.OrderID,
		Reference:   d.Reference,
		OrderDate:   d.OrderDate,
		Status:      string(d.Status),
		ValidatedBy: d.ValidatedBy,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToModelOrderClient converts a domain OrderClient to a model OrderClient
func ToModelOrderClient(orderID string, d domain.OrderClient) models.OrderClient {
	return models.OrderClient{
		OrderClientID:   d.OrderClientID,
		OrderID:         orderID,
		Name:            d.Name,
		Phone:           d.Phone,
		PaymentType:     d.PaymentType,
		Status:          string(d.Status),
		RejectionReason: d.RejectionReason,
		RejectedBy:      d.RejectedBy,
	}
}

// ToModelOrderItem converts a domain OrderItem to a model OrderItem
func ToModelOrderItem(orderClientID string, d domain.OrderItem) models.OrderItem {
	return models.OrderItem{
		OrderItemID:   d.OrderItemID,
		OrderClientID: orderClientID,
		StockItemID:   d.StockItemID,
		Quantity:      d.Quantity,
		UnitPriceGNF:  d.UnitPriceGNF,
	}
}

// ToDomainOrder converts a model CommercialOrder with its clients and items
// to a domain CommercialOrder. itemsByClient keys by OrderClientID.
func ToDomainOrder(m models.CommercialOrder, clients []models.OrderClient, itemsByClient map[string][]models.OrderItem) domain.CommercialOrder {
	d := domain.CommercialOrder{
		OrderID:     m.OrderID,
		Reference:   m.Reference,
		OrderDate:   m.OrderDate,
		Status:      domain.OrderStatus(m.Status),
		ValidatedBy: m.ValidatedBy,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	d.Clients = make([]domain.OrderClient, 0, len(clients))
	for _, client := range clients {
		d.Clients = append(d.Clients, ToDomainOrderClient(client, itemsByClient[client.OrderClientID]))
	}
	return d
}

// ToDomainOrderClient converts a model OrderClient and its items to a domain OrderClient
func ToDomainOrderClient(m models.OrderClient, items []models.OrderItem) domain.OrderClient {
	d := domain.OrderClient{
		OrderClientID:   m.OrderClientID,
		Name:            m.Name,
		Phone:           m.Phone,
		PaymentType:     m.PaymentType,
		Status:          domain.ClientStatus(m.Status),
		RejectionReason: m.RejectionReason,
		RejectedBy:      m.RejectedBy,
	}
	d.Items = make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		d.Items = append(d.Items, domain.OrderItem{
			OrderItemID:  item.OrderItemID,
			StockItemID:  item.StockItemID,
			Quantity:     item.Quantity,
			UnitPriceGNF: item.UnitPriceGNF,
		})
	}
	return d
}

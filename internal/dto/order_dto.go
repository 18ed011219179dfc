package dto

import (
	"time"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one stock-item position on a client's order.
type OrderItemRequest struct {
	StockItemID  string          `json:"stockItemID" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPriceGNF decimal.Decimal `json:"unitPriceGNF"`
}

// OrderClientRequest is one client's portion of an order to create.
type OrderClientRequest struct {
	Name            string             `json:"name" validate:"required"`
	Phone           string             `json:"phone" validate:"omitempty"`
	PaymentType     string             `json:"paymentType" validate:"omitempty"`
	Status          string             `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	RejectionReason string             `json:"rejectionReason" validate:"required_if=Status rejected"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateOrderRequest defines the structure for creating a new commercial order.
type CreateOrderRequest struct {
	Reference string               `json:"reference" validate:"required"`
	OrderDate time.Time            `json:"orderDate" validate:"required"`
	Clients   []OrderClientRequest `json:"clients" validate:"required,min=1,dive"`
}

// Validate applies tag validation plus decimal range rules.
func (r CreateOrderRequest) Validate() error {
	if err := checkStruct(r); err != nil {
		return err
	}
	for ci, client := range r.Clients {
		for ii, item := range client.Items {
			if !item.Quantity.IsPositive() {
				return validationErrorf("client %d item %d: quantity must be positive", ci, ii)
			}
			if item.UnitPriceGNF.IsNegative() {
				return validationErrorf("client %d item %d: unit price must not be negative", ci, ii)
			}
		}
	}
	return nil
}

// ToDomain builds the order aggregate in draft status. Client status defaults
// to pending when omitted.
func (r CreateOrderRequest) ToDomain(orderID string, clientIDs []string, itemIDs [][]string) domain.CommercialOrder {
	clients := make([]domain.OrderClient, len(r.Clients))
	for ci, client := range r.Clients {
		status := domain.ClientStatus(client.Status)
		if status == "" {
			status = domain.ClientPending
		}
		items := make([]domain.OrderItem, len(client.Items))
		for ii, item := range client.Items {
			items[ii] = domain.OrderItem{
				OrderItemID:  itemIDs[ci][ii],
				StockItemID:  item.StockItemID,
				Quantity:     item.Quantity,
				UnitPriceGNF: item.UnitPriceGNF,
			}
		}
		clients[ci] = domain.OrderClient{
			OrderClientID:   clientIDs[ci],
			Name:            client.Name,
			Phone:           client.Phone,
			PaymentType:     client.PaymentType,
			Status:          status,
			RejectionReason: client.RejectionReason,
			Items:           items,
		}
	}
	return domain.CommercialOrder{
		OrderID:   orderID,
		Reference: r.Reference,
		OrderDate: r.OrderDate,
		Status:    domain.OrderDraft,
		Clients:   clients,
	}
}

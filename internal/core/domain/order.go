package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a commercial order.
type OrderStatus string

const (
	OrderDraft     OrderStatus = "draft"
	OrderSubmitted OrderStatus = "submitted"
	OrderValidated OrderStatus = "validated"
	OrderRejected  OrderStatus = "rejected"
	OrderCancelled OrderStatus = "cancelled"
)

// ClientStatus is the per-client validation state inside an order.
type ClientStatus string

const (
	ClientPending  ClientStatus = "pending"
	ClientApproved ClientStatus = "approved"
	ClientRejected ClientStatus = "rejected"
)

// OrderItem is one stock-item position on a client's portion of an order.
// A missing unit price is stored as zero and contributes zero to every total.
type OrderItem struct {
	OrderItemID  string          `json:"orderItemID"`
	StockItemID  string          `json:"stockItemID"`
	Quantity     decimal.Decimal `json:"quantity"` // > 0
	UnitPriceGNF decimal.Decimal `json:"unitPriceGNF"`
}

// OrderClient groups the items sold to one client within an order.
// A rejected client is excluded from order totals and from forecast
// reconciliation.
type OrderClient struct {
	OrderClientID   string       `json:"orderClientID"`
	Name            string       `json:"name"`
	Phone           string       `json:"phone"`
	PaymentType     string       `json:"paymentType"`
	Status          ClientStatus `json:"status"`
	RejectionReason string       `json:"rejectionReason"`
	RejectedBy      string       `json:"rejectedBy"`
	Items           []OrderItem  `json:"items"`
}

// IsRejected reports whether the client's lines must be excluded.
func (c OrderClient) IsRejected() bool {
	return c.Status == ClientRejected
}

// CommercialOrder is a multi-client sales order with a validation workflow.
type CommercialOrder struct {
	OrderID     string        `json:"orderID"`
	Reference   string        `json:"reference"` // unique across orders
	OrderDate   time.Time     `json:"orderDate"`
	Status      OrderStatus   `json:"status"`
	ValidatedBy string        `json:"validatedBy"` // set when Status == OrderValidated
	Clients     []OrderClient `json:"clients"`
	AuditFields
}

// IsValidated reports whether the order has passed validation.
func (o CommercialOrder) IsValidated() bool {
	return o.Status == OrderValidated
}

// CanModifyItems reports whether the order's items may still change.
// Items are frozen once the order is validated.
func (o CommercialOrder) CanModifyItems() bool {
	return o.Status == OrderDraft || o.Status == OrderSubmitted
}

// CanTransitionTo reports whether the order may move to the given status.
func (o CommercialOrder) CanTransitionTo(next OrderStatus) bool {
	switch o.Status {
	case OrderDraft:
		return next == OrderSubmitted || next == OrderCancelled
	case OrderSubmitted:
		return next == OrderValidated || next == OrderRejected || next == OrderCancelled
	}
	return false
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommercialOrder is the persistence row for an order header.
type CommercialOrder struct {
	OrderID     string    `json:"orderID"` // Primary Key (UUID)
	Reference   string    `json:"reference"`
	OrderDate   time.Time `json:"orderDate"`
	Status      string    `json:"status"`
	ValidatedBy string    `json:"validatedBy"`
	AuditFields
}

// OrderClient is the persistence row for one client's portion of an order.
type OrderClient struct {
	OrderClientID   string `json:"orderClientID"` // Primary Key (UUID)
	OrderID         string `json:"orderID"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	PaymentType     string `json:"paymentType"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason"`
	RejectedBy      string `json:"rejectedBy"`
}

// OrderItem is the persistence row for one stock-item position.
type OrderItem struct {
	OrderItemID   string          `json:"orderItemID"` // Primary Key (UUID)
	OrderClientID string          `json:"orderClientID"`
	StockItemID   string          `json:"stockItemID"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPriceGNF  decimal.Decimal `json:"unitPriceGNF"`
}

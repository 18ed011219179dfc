package models

import (
	"github.com/shopspring/decimal"
)

// Simulation is the persistence row for a landed-cost simulation.
// Rates are flattened into one column per supported foreign currency,
// matching the legacy schema.
type Simulation struct {
	SimulationID      string          `json:"simulationID"` // Primary Key (UUID)
	Name              string          `json:"name"`
	RateUSD           decimal.Decimal `json:"rateUSD"`
	RateEUR           decimal.Decimal `json:"rateEUR"`
	RateXOF           decimal.Decimal `json:"rateXOF"`
	CustomsGNF        decimal.Decimal `json:"customsGNF"`
	HandlingGNF       decimal.Decimal `json:"handlingGNF"`
	OthersGNF         decimal.Decimal `json:"othersGNF"`
	TransportFixedGNF decimal.Decimal `json:"transportFixedGNF"`
	TransportPerKgGNF decimal.Decimal `json:"transportPerKgGNF"`
	Basis             string          `json:"basis"`
	TruckCapacityTons decimal.Decimal `json:"truckCapacityTons"`
	IsCompleted       bool            `json:"isCompleted"`
	AuditFields
}

// SimulationLine is the persistence row for one manifest line.
type SimulationLine struct {
	LineID          string          `json:"lineID"` // Primary Key (UUID)
	SimulationID    string          `json:"simulationID"`
	ArticleID       string          `json:"articleID"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Currency        string          `json:"currency"`
	UnitMassKg      decimal.Decimal `json:"unitMassKg"`
	SellingPriceGNF decimal.Decimal `json:"sellingPriceGNF"`
}

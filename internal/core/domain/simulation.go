package domain

import "github.com/shopspring/decimal"

// CostBasis selects which per-line weight the logistics allocator uses.
type CostBasis string

const (
	BasisValue  CostBasis = "value"  // prorate by quantity x unit purchase value in GNF
	BasisWeight CostBasis = "weight" // prorate by quantity x unit mass in kg
)

// LogisticsSchedule carries the logistics cost structure of one simulation.
// Fixed components are flat GNF amounts; TransportPerKgGNF applies to the
// total mass of the manifest.
type LogisticsSchedule struct {
	CustomsGNF        decimal.Decimal `json:"customsGNF"`
	HandlingGNF       decimal.Decimal `json:"handlingGNF"`
	OthersGNF         decimal.Decimal `json:"othersGNF"`
	TransportFixedGNF decimal.Decimal `json:"transportFixedGNF"`
	TransportPerKgGNF decimal.Decimal `json:"transportPerKgGNF"`
}

// FixedTotalGNF returns the sum of the flat logistics components.
func (l LogisticsSchedule) FixedTotalGNF() decimal.Decimal {
	return l.CustomsGNF.Add(l.HandlingGNF).Add(l.OthersGNF).Add(l.TransportFixedGNF)
}

// SimulationLine is one article position on a purchase manifest.
// UnitMassKg is copied from the Article when the line is created so later
// catalogue edits do not change an existing simulation.
type SimulationLine struct {
	LineID          string          `json:"lineID"`
	ArticleID       string          `json:"articleID"`
	Quantity        decimal.Decimal `json:"quantity"`  // > 0
	UnitPrice       decimal.Decimal `json:"unitPrice"` // in Currency
	Currency        Currency        `json:"currency"`
	UnitMassKg      decimal.Decimal `json:"unitMassKg"`      // >= 0
	SellingPriceGNF decimal.Decimal `json:"sellingPriceGNF"` // >= 0
}

// Simulation is a landed-cost profitability scenario over a purchase manifest.
type Simulation struct {
	SimulationID      string            `json:"simulationID"`
	Name              string            `json:"name"`
	Rates             RateBook          `json:"rates"` // USD/EUR/XOF in GNF per unit
	Logistics         LogisticsSchedule `json:"logistics"`
	Basis             CostBasis         `json:"basis"`
	TruckCapacityTons decimal.Decimal   `json:"truckCapacityTons"` // >= 0
	Lines             []SimulationLine  `json:"lines"`
	IsCompleted       bool              `json:"isCompleted"`
	AuditFields
}

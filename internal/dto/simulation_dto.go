package dto

import (
	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SimulationLineRequest is one manifest line of a simulation to create.
type SimulationLineRequest struct {
	ArticleID       string          `json:"articleID" validate:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Currency        string          `json:"currency" validate:"required,oneof=GNF USD EUR XOF"`
	UnitMassKg      decimal.Decimal `json:"unitMassKg"`
	SellingPriceGNF decimal.Decimal `json:"sellingPriceGNF"`
}

// CreateSimulationRequest defines the structure for creating a new simulation.
// Rates are GNF per one unit of the foreign currency.
type CreateSimulationRequest struct {
	Name              string                  `json:"name" validate:"required"`
	RateUSD           decimal.Decimal         `json:"rateUSD"`
	RateEUR           decimal.Decimal         `json:"rateEUR"`
	RateXOF           decimal.Decimal         `json:"rateXOF"`
	CustomsGNF        decimal.Decimal         `json:"customsGNF"`
	HandlingGNF       decimal.Decimal         `json:"handlingGNF"`
	OthersGNF         decimal.Decimal         `json:"othersGNF"`
	TransportFixedGNF decimal.Decimal         `json:"transportFixedGNF"`
	TransportPerKgGNF decimal.Decimal         `json:"transportPerKgGNF"`
	Basis             string                  `json:"basis" validate:"omitempty,oneof=value weight"`
	TruckCapacityTons decimal.Decimal         `json:"truckCapacityTons"`
	Lines             []SimulationLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// Validate applies tag validation plus the decimal range rules the tag
// language cannot express.
func (r CreateSimulationRequest) Validate() error {
	if err := checkStruct(r); err != nil {
		return err
	}
	for _, rate := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"rateUSD", r.RateUSD}, {"rateEUR", r.RateEUR}, {"rateXOF", r.RateXOF},
		{"customsGNF", r.CustomsGNF}, {"handlingGNF", r.HandlingGNF},
		{"othersGNF", r.OthersGNF}, {"transportFixedGNF", r.TransportFixedGNF},
		{"transportPerKgGNF", r.TransportPerKgGNF}, {"truckCapacityTons", r.TruckCapacityTons},
	} {
		if rate.value.IsNegative() {
			return validationErrorf("%s must not be negative", rate.name)
		}
	}
	for i, line := range r.Lines {
		if !line.Quantity.IsPositive() {
			return validationErrorf("line %d: quantity must be positive", i)
		}
		if !line.UnitPrice.IsPositive() {
			return validationErrorf("line %d: unit price must be positive", i)
		}
		if line.UnitMassKg.IsNegative() {
			return validationErrorf("line %d: unit mass must not be negative", i)
		}
		if line.SellingPriceGNF.IsNegative() {
			return validationErrorf("line %d: selling price must not be negative", i)
		}
	}
	return nil
}

// ToDomain builds the domain aggregate. Basis defaults to value when omitted.
func (r CreateSimulationRequest) ToDomain(simulationID string, lineIDs []string) domain.Simulation {
	basis := domain.CostBasis(r.Basis)
	if basis == "" {
		basis = domain.BasisValue
	}
	lines := make([]domain.SimulationLine, len(r.Lines))
	for i, line := range r.Lines {
		lines[i] = domain.SimulationLine{
			LineID:          lineIDs[i],
			ArticleID:       line.ArticleID,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			Currency:        domain.Currency(line.Currency),
			UnitMassKg:      line.UnitMassKg,
			SellingPriceGNF: line.SellingPriceGNF,
		}
	}
	return domain.Simulation{
		SimulationID: simulationID,
		Name:         r.Name,
		Rates: domain.RateBook{
			domain.USD: r.RateUSD,
			domain.EUR: r.RateEUR,
			domain.XOF: r.RateXOF,
		},
		Logistics: domain.LogisticsSchedule{
			CustomsGNF:        r.CustomsGNF,
			HandlingGNF:       r.HandlingGNF,
			OthersGNF:         r.OthersGNF,
			TransportFixedGNF: r.TransportFixedGNF,
			TransportPerKgGNF: r.TransportPerKgGNF,
		},
		Basis:             basis,
		TruckCapacityTons: r.TruckCapacityTons,
		Lines:             lines,
	}
}

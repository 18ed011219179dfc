package mapping

import (
	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/mkouyate/import_erp_app/internal/models"
)

// ToModelSimulation converts a domain Simulation to a model Simulation
func ToModelSimulation(d domain.Simulation) models.Simulation {
	usd, eur, xof := FlattenRateBook(d.Rates)
	return models.Simulation{
		SimulationID:      d.SimulationID,
		Name:              d.Name,
		RateUSD:           usd,
		RateEUR:           eur,
		RateXOF:           xof,
		CustomsGNF:        d.Logistics.CustomsGNF,
		HandlingGNF:       d.Logistics.HandlingGNF,
		OthersGNF:         d.Logistics.OthersGNF,
		TransportFixedGNF: d.Logistics.TransportFixedGNF,
		TransportPerKgGNF: d.Logistics.TransportPerKgGNF,
		Basis:             string(d.Basis),
		TruckCapacityTons: d.TruckCapacityTons,
		IsCompleted:       d.IsCompleted,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToModelSimulationLine converts a domain SimulationLine to a model SimulationLine
func ToModelSimulationLine(simulationID string, d domain.SimulationLine) models.SimulationLine {
	return models.SimulationLine{
		LineID:          d.LineID,
		SimulationID:    simulationID,
		ArticleID:       d.ArticleID,
		Quantity:        d.Quantity,
		UnitPrice:       d.UnitPrice,
		Currency:        string(d.Currency),
		UnitMassKg:      d.UnitMassKg,
		SellingPriceGNF: d.SellingPriceGNF,
	}
}

// ToDomainSimulation converts a model Simulation and its lines to a domain Simulation
func ToDomainSimulation(m models.Simulation, lines []models.SimulationLine) domain.Simulation {
	d := domain.Simulation{
		SimulationID: m.SimulationID,
		Name:         m.Name,
		Rates:        ToDomainRateBook(m.RateUSD, m.RateEUR, m.RateXOF),
		Logistics: domain.LogisticsSchedule{
			CustomsGNF:        m.CustomsGNF,
			HandlingGNF:       m.HandlingGNF,
			OthersGNF:         m.OthersGNF,
			TransportFixedGNF: m.TransportFixedGNF,
			TransportPerKgGNF: m.TransportPerKgGNF,
		},
		Basis:             domain.CostBasis(m.Basis),
		TruckCapacityTons: m.TruckCapacityTons,
		IsCompleted:       m.IsCompleted,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	d.Lines = make([]domain.SimulationLine, 0, len(lines))
	for _, line := range lines {
		d.Lines = append(d.Lines, ToDomainSimulationLine(line))
	}
	return d
}

// ToDomainSimulationLine converts a model SimulationLine to a domain SimulationLine
func ToDomainSimulationLine(m models.SimulationLine) domain.SimulationLine {
	return domain.SimulationLine{
		LineID:          m.LineID,
		ArticleID:       m.ArticleID,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		Currency:        domain.Currency(m.Currency),
		UnitMassKg:      m.UnitMassKg,
		SellingPriceGNF: m.SellingPriceGNF,
	}
}

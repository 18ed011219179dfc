package services

import (
	"context"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/mkouyate/import_erp_app/internal/dto"
	"github.com/shopspring/decimal"
)

// SimulationReaderSvc defines read operations for simulation data
type SimulationReaderSvc interface {
	// GetSimulationByID retrieves a simulation with its lines.
	GetSimulationByID(ctx context.Context, simulationID string) (*domain.Simulation, error)

	// ListSimulations retrieves simulation headers, most recent first.
	ListSimulations(ctx context.Context, limit, offset int) ([]domain.Simulation, error)
}

// SimulationWriterSvc defines write operations for simulation data
type SimulationWriterSvc interface {
	// CreateSimulation persists a new simulation built from the request.
	CreateSimulation(ctx context.Context, req dto.CreateSimulationRequest, creatorUserID string) (*domain.Simulation, error)
}

// CostingComputeSvc defines the landed-cost computation operations
type CostingComputeSvc interface {
	// Compute produces the landed-cost result for an in-memory simulation.
	// It performs no I/O.
	Compute(sim domain.Simulation) (*domain.SimulationResult, error)

	// ComputeByID loads a simulation, computes it and marks it completed.
	ComputeByID(ctx context.Context, simulationID string, requestingUserID string) (*domain.SimulationResult, error)

	// ProjectAmount converts a GNF amount into a display currency using the
	// simulation's rate book.
	ProjectAmount(sim domain.Simulation, amountGNF decimal.Decimal, to domain.Currency) (decimal.Decimal, error)
}

// CostingSvcFacade combines all costing-related service interfaces
type CostingSvcFacade interface {
	SimulationReaderSvc
	SimulationWriterSvc
	CostingComputeSvc
}

package repositories

import (
	"context"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
)

// SimulationReader defines read operations for simulation data
type SimulationReader interface {
	// FindSimulationByID retrieves a simulation with its lines.
	FindSimulationByID(ctx context.Context, simulationID string) (*domain.Simulation, error)

	// ListSimulations retrieves simulations, most recent first.
	ListSimulations(ctx context.Context, limit, offset int) ([]domain.Simulation, error)
}

// SimulationWriter defines write operations for simulation data
type SimulationWriter interface {
	// SaveSimulation inserts or updates a simulation and its lines.
	SaveSimulation(ctx context.Context, sim domain.Simulation) error

	// MarkSimulationCompleted flips the completion flag after a compute run.
	MarkSimulationCompleted(ctx context.Context, simulationID string, updatedByUserID string) error
}

// SimulationRepositoryFacade combines all simulation-related repository interfaces
type SimulationRepositoryFacade interface {
	SimulationReader
	SimulationWriter
}

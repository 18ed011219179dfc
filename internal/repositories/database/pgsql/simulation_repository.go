package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkouyate/import_erp_app/internal/apperrors"
	"github.com/mkouyate/import_erp_app/internal/core/domain"
	portsrepo "github.com/mkouyate/import_erp_app/internal/core/ports/repositories"
	"github.com/mkouyate/import_erp_app/internal/models"
	"github.com/mkouyate/import_erp_app/internal/utils/mapping"
)

type PgxSimulationRepository struct {
	BaseRepository
}

// newPgxSimulationRepository creates a new repository for simulation data.
func newPgxSimulationRepository(pool *pgxpool.Pool) portsrepo.SimulationRepositoryFacade {
	return &PgxSimulationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SimulationRepositoryFacade = (*PgxSimulationRepository)(nil)

// SaveSimulation upserts the simulation header and replaces its lines in one
// transaction.
func (r *PgxSimulationRepository) SaveSimulation(ctx context.Context, sim domain.Simulation) error {
	modelSim := mapping.ToModelSimulation(sim)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO simulations (simulation_id, name, rate_usd, rate_eur, rate_xof,
			customs_gnf, handling_gnf, others_gnf, transport_fixed_gnf, transport_per_kg_gnf,
			basis, truck_capacity_tons, is_completed,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (simulation_id) DO UPDATE SET
			name = EXCLUDED.name,
			rate_usd = EXCLUDED.rate_usd,
			rate_eur = EXCLUDED.rate_eur,
			rate_xof = EXCLUDED.rate_xof,
			customs_gnf = EXCLUDED.customs_gnf,
			handling_gnf = EXCLUDED.handling_gnf,
			others_gnf = EXCLUDED.others_gnf,
			transport_fixed_gnf = EXCLUDED.transport_fixed_gnf,
			transport_per_kg_gnf = EXCLUDED.transport_per_kg_gnf,
			basis = EXCLUDED.basis,
			truck_capacity_tons = EXCLUDED.truck_capacity_tons,
			is_completed = EXCLUDED.is_completed,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelSim.SimulationID,
		modelSim.Name,
		modelSim.RateUSD,
		modelSim.RateEUR,
		modelSim.RateXOF,
		modelSim.CustomsGNF,
		modelSim.HandlingGNF,
		modelSim.OthersGNF,
		modelSim.TransportFixedGNF,
		modelSim.TransportPerKgGNF,
		modelSim.Basis,
		modelSim.TruckCapacityTons,
		modelSim.IsCompleted,
		modelSim.CreatedAt,
		modelSim.CreatedBy,
		modelSim.LastUpdatedAt,
		modelSim.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: simulation %s", apperrors.ErrDuplicate, modelSim.SimulationID)
		}
		return fmt.Errorf("failed to save simulation %s: %w", modelSim.SimulationID, err)
	}

	// Replace lines wholesale; the manifest is small and edited as a unit.
	if _, err := tx.Exec(ctx, `DELETE FROM simulation_lines WHERE simulation_id = $1;`, modelSim.SimulationID); err != nil {
		return fmt.Errorf("failed to clear lines for simulation %s: %w", modelSim.SimulationID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO simulation_lines (line_id, simulation_id, article_id, quantity,
			unit_price, currency_code, unit_mass_kg, selling_price_gnf)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, line := range sim.Lines {
		modelLine := mapping.ToModelSimulationLine(sim.SimulationID, line)
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.SimulationID,
			modelLine.ArticleID,
			modelLine.Quantity,
			modelLine.UnitPrice,
			modelLine.Currency,
			modelLine.UnitMassKg,
			modelLine.SellingPriceGNF,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert lines for simulation %s: %w", modelSim.SimulationID, err)
	}

	return r.Commit(ctx, tx)
}

// MarkSimulationCompleted flips the completion flag after a compute run.
func (r *PgxSimulationRepository) MarkSimulationCompleted(ctx context.Context, simulationID string, updatedByUserID string) error {
	query := `
		UPDATE simulations
		SET is_completed = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE simulation_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, simulationID, time.Now().UTC(), updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to mark simulation %s completed: %w", simulationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindSimulationByID retrieves a simulation with its lines.
func (r *PgxSimulationRepository) FindSimulationByID(ctx context.Context, simulationID string) (*domain.Simulation, error) {
	query := `
		SELECT simulation_id, name, rate_usd, rate_eur, rate_xof,
		       customs_gnf, handling_gnf, others_gnf, transport_fixed_gnf, transport_per_kg_gnf,
		       basis, truck_capacity_tons, is_completed,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM simulations
		WHERE simulation_id = $1;
	`
	var modelSim models.Simulation
	err := r.Pool.QueryRow(ctx, query, simulationID).Scan(
		&modelSim.SimulationID,
		&modelSim.Name,
		&modelSim.RateUSD,
		&modelSim.RateEUR,
		&modelSim.RateXOF,
		&modelSim.CustomsGNF,
		&modelSim.HandlingGNF,
		&modelSim.OthersGNF,
		&modelSim.TransportFixedGNF,
		&modelSim.TransportPerKgGNF,
		&modelSim.Basis,
		&modelSim.TruckCapacityTons,
		&modelSim.IsCompleted,
		&modelSim.CreatedAt,
		&modelSim.CreatedBy,
		&modelSim.LastUpdatedAt,
		&modelSim.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find simulation %s: %w", simulationID, err)
	}

	lines, err := r.findLines(ctx, simulationID)
	if err != nil {
		return nil, err
	}

	domainSim := mapping.ToDomainSimulation(modelSim, lines)
	return &domainSim, nil
}

// ListSimulations retrieves simulations ordered by creation time, newest
// first. Lines are not loaded here; list views only need the headers.
func (r *PgxSimulationRepository) ListSimulations(ctx context.Context, limit, offset int) ([]domain.Simulation, error) {
	query := `
		SELECT simulation_id, name, rate_usd, rate_eur, rate_xof,
		       customs_gnf, handling_gnf, others_gnf, transport_fixed_gnf, transport_per_kg_gnf,
		       basis, truck_capacity_tons, is_completed,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM simulations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulations: %w", err)
	}
	defer rows.Close()

	modelSims, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Simulation, error) {
		var sim models.Simulation
		err := row.Scan(
			&sim.SimulationID,
			&sim.Name,
			&sim.RateUSD,
			&sim.RateEUR,
			&sim.RateXOF,
			&sim.CustomsGNF,
			&sim.HandlingGNF,
			&sim.OthersGNF,
			&sim.TransportFixedGNF,
			&sim.TransportPerKgGNF,
			&sim.Basis,
			&sim.TruckCapacityTons,
			&sim.IsCompleted,
			&sim.CreatedAt,
			&sim.CreatedBy,
			&sim.LastUpdatedAt,
			&sim.LastUpdatedBy,
		)
		return sim, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan simulations: %w", err)
	}

	domainSims := make([]domain.Simulation, 0, len(modelSims))
	for _, m := range modelSims {
		domainSims = append(domainSims, mapping.ToDomainSimulation(m, nil))
	}
	return domainSims, nil
}

func (r *PgxSimulationRepository) findLines(ctx context.Context, simulationID string) ([]models.SimulationLine, error) {
	query := `
		SELECT line_id, simulation_id, article_id, quantity,
		       unit_price, currency_code, unit_mass_kg, selling_price_gnf
		FROM simulation_lines
		WHERE simulation_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, simulationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for simulation %s: %w", simulationID, err)
	}
	defer rows.Close()

	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SimulationLine, error) {
		var line models.SimulationLine
		err := row.Scan(
			&line.LineID,
			&line.SimulationID,
			&line.ArticleID,
			&line.Quantity,
			&line.UnitPrice,
			&line.Currency,
			&line.UnitMassKg,
			&line.SellingPriceGNF,
		)
		return line, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan lines for simulation %s: %w", simulationID, err)
	}
	return lines, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
	portsrepo "github.com/mkouyate/import_erp_app/internal/core/ports/repositories"
	portssvc "github.com/mkouyate/import_erp_app/internal/core/ports/services"
	"github.com/mkouyate/import_erp_app/internal/dto"
	"github.com/mkouyate/import_erp_app/internal/utils/allocation"
)

var (
	ErrEmptySimulation = errors.New("simulation has no lines")
)

var hundred = decimal.NewFromInt(100)
var kgPerTon = decimal.NewFromInt(1000)

const defaultListLimit = 50

// costingService computes landed cost, margins and truck utilization for
// purchase simulations.
type costingService struct {
	simulationRepo portsrepo.SimulationRepositoryFacade
}

// NewCostingService creates a new costing service.
func NewCostingService(simulationRepo portsrepo.SimulationRepositoryFacade) portssvc.CostingSvcFacade {
	return &costingService{simulationRepo: simulationRepo}
}

// Ensure costingService implements the portssvc.CostingSvcFacade interface
var _ portssvc.CostingSvcFacade = (*costingService)(nil)

// purchaseRate returns the GNF rate used to convert a line's purchase price.
// A missing or zero XOF rate falls back to the USD rate: legacy simulations
// were captured that way and must keep their historical results.
func purchaseRate(book domain.RateBook, c domain.Currency) (decimal.Decimal, error) {
	if c == domain.XOF {
		if r, ok := book[domain.XOF]; !ok || r.IsZero() {
			return book.Rate(domain.USD)
		}
	}
	return book.Rate(c)
}

// Compute produces the landed-cost result for an in-memory simulation.
// All outputs are in GNF; no I/O is performed.
func (s *costingService) Compute(sim domain.Simulation) (*domain.SimulationResult, error) {
	n := len(sim.Lines)
	if n == 0 {
		return nil, fmt.Errorf("%w: simulation %s", ErrEmptySimulation, sim.SimulationID)
	}

	unitPurchases := make([]decimal.Decimal, n)
	purchaseValues := make([]decimal.Decimal, n)
	masses := make([]decimal.Decimal, n)
	totalPurchase := decimal.Zero
	totalMass := decimal.Zero
	for i, line := range sim.Lines {
		rate, err := purchaseRate(sim.Rates, line.Currency)
		if err != nil {
			return nil, err
		}
		unitPurchases[i] = line.UnitPrice.Mul(rate)
		purchaseValues[i] = unitPurchases[i].Mul(line.Quantity)
		masses[i] = line.UnitMassKg.Mul(line.Quantity)
		totalPurchase = totalPurchase.Add(purchaseValues[i])
		totalMass = totalMass.Add(masses[i])
	}

	fixedLogistics := sim.Logistics.FixedTotalGNF()
	variableLogistics := sim.Logistics.TransportPerKgGNF.Mul(totalMass)
	totalLogistics := fixedLogistics.Add(variableLogistics)

	weights, err := allocation.WeightsFor(sim.Basis, purchaseValues, masses)
	if err != nil {
		return nil, err
	}
	allocated, err := allocation.Allocate(totalLogistics, weights)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.SimulationLineCost, n)
	totalCost := decimal.Zero
	totalRevenue := decimal.Zero
	for i, line := range sim.Lines {
		logisticsPerUnit := domain.DivBank(allocated[i], line.Quantity)
		costPerUnit := unitPurchases[i].Add(logisticsPerUnit)
		unitMargin := line.SellingPriceGNF.Sub(costPerUnit)
		marginPct := decimal.Zero
		if !costPerUnit.IsZero() {
			marginPct = domain.DivBank(unitMargin.Mul(hundred), costPerUnit)
		}
		lines[i] = domain.SimulationLineCost{
			LineID:             line.LineID,
			ArticleID:          line.ArticleID,
			Quantity:           line.Quantity,
			UnitPurchase:       unitPurchases[i],
			PurchaseValue:      purchaseValues[i],
			MassKg:             masses[i],
			AllocatedLogistics: allocated[i],
			LogisticsPerUnit:   logisticsPerUnit,
			CostPerUnit:        costPerUnit,
			SellingPrice:       line.SellingPriceGNF,
			UnitMargin:         unitMargin,
			MarginPct:          marginPct,
		}
		totalCost = totalCost.Add(costPerUnit.Mul(line.Quantity))
		totalRevenue = totalRevenue.Add(line.SellingPriceGNF.Mul(line.Quantity))
	}

	totalMargin := totalRevenue.Sub(totalCost)
	totalMarginPct := decimal.Zero
	if !totalCost.IsZero() {
		totalMarginPct = domain.DivBank(totalMargin.Mul(hundred), totalCost)
	}

	utilizationPct := decimal.Zero
	capacityKg := sim.TruckCapacityTons.Mul(kgPerTon)
	if capacityKg.IsPositive() {
		utilizationPct = domain.DivBank(totalMass.Mul(hundred), capacityKg)
	}

	return &domain.SimulationResult{
		SimulationID:        sim.SimulationID,
		Currency:            domain.GNF,
		Lines:               lines,
		TotalPurchaseValue:  totalPurchase,
		TotalMassKg:         totalMass,
		FixedLogistics:      fixedLogistics,
		VariableLogistics:   variableLogistics,
		TotalLogistics:      totalLogistics,
		TotalCost:           totalCost,
		TotalRevenue:        totalRevenue,
		TotalMargin:         totalMargin,
		TotalMarginPct:      totalMarginPct,
		TruckUtilizationPct: utilizationPct,
		TruckOverflow:       utilizationPct.GreaterThan(hundred),
	}, nil
}

// ComputeByID loads a simulation, computes its result and marks it completed.
func (s *costingService) ComputeByID(ctx context.Context, simulationID string, requestingUserID string) (*domain.SimulationResult, error) {
	sim, err := s.simulationRepo.FindSimulationByID(ctx, simulationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load simulation %s: %w", simulationID, err)
	}

	result, err := s.Compute(*sim)
	if err != nil {
		return nil, err
	}

	if err := s.simulationRepo.MarkSimulationCompleted(ctx, simulationID, requestingUserID); err != nil {
		return nil, fmt.Errorf("failed to mark simulation %s completed: %w", simulationID, err)
	}
	return result, nil
}

// ProjectAmount converts a GNF amount into a display currency using the
// simulation's rate book. Percentages and quantities never pass through here.
func (s *costingService) ProjectAmount(sim domain.Simulation, amountGNF decimal.Decimal, to domain.Currency) (decimal.Decimal, error) {
	return sim.Rates.Convert(amountGNF, domain.GNF, to)
}

// GetSimulationByID retrieves a simulation with its lines.
func (s *costingService) GetSimulationByID(ctx context.Context, simulationID string) (*domain.Simulation, error) {
	sim, err := s.simulationRepo.FindSimulationByID(ctx, simulationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get simulation in service: %w", err)
	}
	return sim, nil
}

// ListSimulations retrieves simulation headers, most recent first.
func (s *costingService) ListSimulations(ctx context.Context, limit, offset int) ([]domain.Simulation, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	sims, err := s.simulationRepo.ListSimulations(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations in service: %w", err)
	}
	return sims, nil
}

// CreateSimulation validates the request and persists a new simulation.
func (s *costingService) CreateSimulation(ctx context.Context, req dto.CreateSimulationRequest, creatorUserID string) (*domain.Simulation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lineIDs := make([]string, len(req.Lines))
	for i := range lineIDs {
		lineIDs[i] = uuid.NewString()
	}
	sim := req.ToDomain(uuid.NewString(), lineIDs)

	now := time.Now()
	sim.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.simulationRepo.SaveSimulation(ctx, sim); err != nil {
		return nil, fmt.Errorf("failed to create simulation in service: %w", err)
	}
	return &sim, nil
}

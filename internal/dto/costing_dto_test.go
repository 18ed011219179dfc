package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/mkouyate/import_erp_app/internal/dto"
)

func TestToSimulationResultResponse(t *testing.T) {
	result := domain.SimulationResult{
		SimulationID: "sim-1",
		Currency:     domain.GNF,
		Lines: []domain.SimulationLineCost{
			{
				ArticleID:          "A1",
				Quantity:           decimal.NewFromInt(10),
				UnitPurchase:       decimal.RequireFromString("1275000"),
				PurchaseValue:      decimal.RequireFromString("12750000"),
				MassKg:             decimal.RequireFromString("2"),
				AllocatedLogistics: decimal.RequireFromString("1040318.18181818"),
				CostPerUnit:        decimal.RequireFromString("1379031.81818182"),
				SellingPrice:       decimal.NewFromInt(2000000),
				UnitMargin:         decimal.RequireFromString("620968.18181818"),
				MarginPct:          decimal.RequireFromString("45.02941909"),
			},
		},
		TotalPurchaseValue:  decimal.NewFromInt(46750000),
		TotalMassKg:         decimal.RequireFromString("14.5"),
		TotalLogistics:      decimal.NewFromInt(3814500),
		TotalCost:           decimal.NewFromInt(50564500),
		TotalRevenue:        decimal.NewFromInt(62500000),
		TotalMargin:         decimal.NewFromInt(11935500),
		TotalMarginPct:      decimal.RequireFromString("23.60448823"),
		TruckUtilizationPct: decimal.RequireFromString("72.5"),
		TruckOverflow:       false,
	}

	resp := dto.ToSimulationResultResponse(result)

	assert.Equal(t, "sim-1", resp.SimulationID)
	assert.Equal(t, "GNF", resp.Currency)
	require.Len(t, resp.Lines, 1)

	// Amounts are rounded only here, at the display boundary.
	line := resp.Lines[0]
	assert.Equal(t, "A1", line.ArticleID)
	assert.Equal(t, "10.0000", line.Quantity)
	assert.Equal(t, "1275000.00", line.UnitPurchase)
	assert.Equal(t, "1040318.18", line.AllocatedLogistics)
	assert.Equal(t, "1379031.82", line.CostPerUnit)
	assert.Equal(t, "620968.18", line.UnitMargin)
	assert.Equal(t, "45.03", line.MarginPct)

	assert.Equal(t, "46750000.00", resp.TotalPurchaseValue)
	assert.Equal(t, "14.5000", resp.TotalMassKg)
	assert.Equal(t, "50564500.00", resp.TotalCost)
	assert.Equal(t, "23.60", resp.TotalMarginPct)
	assert.Equal(t, "72.50", resp.TruckUtilizationPct)
	assert.False(t, resp.TruckOverflow)
}

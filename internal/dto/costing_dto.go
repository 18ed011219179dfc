package dto

import (
	"github.com/mkouyate/import_erp_app/internal/core/domain"
)

// SimulationLineCostResponse is the display form of one costed line.
// Amounts are rounded here, at the presentation boundary, never earlier.
type SimulationLineCostResponse struct {
	ArticleID          string `json:"articleID"`
	Quantity           string `json:"quantity"`
	UnitPurchase       string `json:"unitPurchase"`
	PurchaseValue      string `json:"purchaseValue"`
	MassKg             string `json:"massKg"`
	AllocatedLogistics string `json:"allocatedLogistics"`
	CostPerUnit        string `json:"costPerUnit"`
	SellingPrice       string `json:"sellingPrice"`
	UnitMargin         string `json:"unitMargin"`
	MarginPct          string `json:"marginPct"`
}

// SimulationResultResponse is the display form of a full costing run.
type SimulationResultResponse struct {
	SimulationID        string                       `json:"simulationID"`
	Currency            string                       `json:"currency"`
	Lines               []SimulationLineCostResponse `json:"lines"`
	TotalPurchaseValue  string                       `json:"totalPurchaseValue"`
	TotalMassKg         string                       `json:"totalMassKg"`
	TotalLogistics      string                       `json:"totalLogistics"`
	TotalCost           string                       `json:"totalCost"`
	TotalRevenue        string                       `json:"totalRevenue"`
	TotalMargin         string                       `json:"totalMargin"`
	TotalMarginPct      string                       `json:"totalMarginPct"`
	TruckUtilizationPct string                       `json:"truckUtilizationPct"`
	TruckOverflow       bool                         `json:"truckOverflow"`
}

// ToSimulationResultResponse converts a domain.SimulationResult to its display DTO.
func ToSimulationResultResponse(r domain.SimulationResult) SimulationResultResponse {
	lines := make([]SimulationLineCostResponse, len(r.Lines))
	for i, line := range r.Lines {
		lines[i] = SimulationLineCostResponse{
			ArticleID:          line.ArticleID,
			Quantity:           line.Quantity.StringFixed(4),
			UnitPurchase:       line.UnitPurchase.StringFixed(2),
			PurchaseValue:      line.PurchaseValue.StringFixed(2),
			MassKg:             line.MassKg.StringFixed(4),
			AllocatedLogistics: line.AllocatedLogistics.StringFixed(2),
			CostPerUnit:        line.CostPerUnit.StringFixed(2),
			SellingPrice:       line.SellingPrice.StringFixed(2),
			UnitMargin:         line.UnitMargin.StringFixed(2),
			MarginPct:          line.MarginPct.StringFixed(2),
		}
	}
	return SimulationResultResponse{
		SimulationID:        r.SimulationID,
		Currency:            string(r.Currency),
		Lines:               lines,
		TotalPurchaseValue:  r.TotalPurchaseValue.StringFixed(2),
		TotalMassKg:         r.TotalMassKg.StringFixed(4),
		TotalLogistics:      r.TotalLogistics.StringFixed(2),
		TotalCost:           r.TotalCost.StringFixed(2),
		TotalRevenue:        r.TotalRevenue.StringFixed(2),
		TotalMargin:         r.TotalMargin.StringFixed(2),
		TotalMarginPct:      r.TotalMarginPct.StringFixed(2),
		TruckUtilizationPct: r.TruckUtilizationPct.StringFixed(2),
		TruckOverflow:       r.TruckOverflow,
	}
}

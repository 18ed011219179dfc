package domain

import "github.com/shopspring/decimal"

// SimulationLineCost is the computed landed cost for one manifest line.
// Monetary fields are expressed in the result's Currency.
type SimulationLineCost struct {
	LineID             string          `json:"lineID"`
	ArticleID          string          `json:"articleID"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPurchase       decimal.Decimal `json:"unitPurchase"`
	PurchaseValue      decimal.Decimal `json:"purchaseValue"`
	MassKg             decimal.Decimal `json:"massKg"`
	AllocatedLogistics decimal.Decimal `json:"allocatedLogistics"`
	LogisticsPerUnit   decimal.Decimal `json:"logisticsPerUnit"`
	CostPerUnit        decimal.Decimal `json:"costPerUnit"`
	SellingPrice       decimal.Decimal `json:"sellingPrice"`
	UnitMargin         decimal.Decimal `json:"unitMargin"`
	MarginPct          decimal.Decimal `json:"marginPct"`
}

// SimulationResult is the immutable aggregate produced by the costing engine.
// Compute always produces it in GNF; Project derives display-currency views.
type SimulationResult struct {
	SimulationID        string               `json:"simulationID"`
	Currency            Currency             `json:"currency"`
	Lines               []SimulationLineCost `json:"lines"`
	TotalPurchaseValue  decimal.Decimal      `json:"totalPurchaseValue"`
	TotalMassKg         decimal.Decimal      `json:"totalMassKg"`
	FixedLogistics      decimal.Decimal      `json:"fixedLogistics"`
	VariableLogistics   decimal.Decimal      `json:"variableLogistics"`
	TotalLogistics      decimal.Decimal      `json:"totalLogistics"`
	TotalCost           decimal.Decimal      `json:"totalCost"`
	TotalRevenue        decimal.Decimal      `json:"totalRevenue"`
	TotalMargin         decimal.Decimal      `json:"totalMargin"`
	TotalMarginPct      decimal.Decimal      `json:"totalMarginPct"`
	TruckUtilizationPct decimal.Decimal      `json:"truckUtilizationPct"`
	TruckOverflow       bool                 `json:"truckOverflow"`
}

// Project returns a copy of the result with every monetary amount converted
// from GNF into the display currency using the given rate book. Quantities,
// masses and percentages are carried over unchanged.
func (r SimulationResult) Project(book RateBook, to Currency) (SimulationResult, error) {
	if to == r.Currency {
		return r, nil
	}
	conv := func(amount decimal.Decimal) (decimal.Decimal, error) {
		return book.Convert(amount, GNF, to)
	}

	out := r
	out.Currency = to
	out.Lines = make([]SimulationLineCost, len(r.Lines))
	var err error
	for i, line := range r.Lines {
		projected := line
		for _, f := range []struct {
			dst *decimal.Decimal
			src decimal.Decimal
		}{
			{&projected.UnitPurchase, line.UnitPurchase},
			{&projected.PurchaseValue, line.PurchaseValue},
			{&projected.AllocatedLogistics, line.AllocatedLogistics},
			{&projected.LogisticsPerUnit, line.LogisticsPerUnit},
			{&projected.CostPerUnit, line.CostPerUnit},
			{&projected.SellingPrice, line.SellingPrice},
			{&projected.UnitMargin, line.UnitMargin},
		} {
			if *f.dst, err = conv(f.src); err != nil {
				return SimulationResult{}, err
			}
		}
		out.Lines[i] = projected
	}
	for _, f := range []struct {
		dst *decimal.Decimal
		src decimal.Decimal
	}{
		{&out.TotalPurchaseValue, r.TotalPurchaseValue},
		{&out.FixedLogistics, r.FixedLogistics},
		{&out.VariableLogistics, r.VariableLogistics},
		{&out.TotalLogistics, r.TotalLogistics},
		{&out.TotalCost, r.TotalCost},
		{&out.TotalRevenue, r.TotalRevenue},
		{&out.TotalMargin, r.TotalMargin},
	} {
		if *f.dst, err = conv(f.src); err != nil {
			return SimulationResult{}, err
		}
	}
	return out, nil
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastStatus is the lifecycle state of a sales forecast.
type ForecastStatus string

const (
	ForecastDraft     ForecastStatus = "draft"
	ForecastActive    ForecastStatus = "active"
	ForecastCompleted ForecastStatus = "completed"
	ForecastArchived  ForecastStatus = "archived"
)

var oneHundred = decimal.NewFromInt(100)

// ForecastItem is one stock-item target inside a forecast. RealizedQuantity
// and RealizedValueGNF are additive accumulators fed by validated orders;
// RealizationPct is derived from them.
type ForecastItem struct {
	ForecastItemID   string          `json:"forecastItemID"`
	StockItemID      string          `json:"stockItemID"`
	ForecastQuantity decimal.Decimal `json:"forecastQuantity"` // > 0
	SellingPriceGNF  decimal.Decimal `json:"sellingPriceGNF"`  // >= 0
	RealizedQuantity decimal.Decimal `json:"realizedQuantity"`
	RealizedValueGNF decimal.Decimal `json:"realizedValueGNF"`
	RealizationPct   decimal.Decimal `json:"realizationPct"`
}

// ForecastValueGNF is the planned value of the item: quantity x selling price.
func (fi ForecastItem) ForecastValueGNF() decimal.Decimal {
	return fi.ForecastQuantity.Mul(fi.SellingPriceGNF)
}

// AddRealization accumulates a realized quantity and value onto the item and
// refreshes the derived percentage. Accumulation never replaces: multiple
// validated orders must sum.
func (fi *ForecastItem) AddRealization(quantity, valueGNF decimal.Decimal) {
	fi.RealizedQuantity = fi.RealizedQuantity.Add(quantity)
	fi.RealizedValueGNF = fi.RealizedValueGNF.Add(valueGNF)
	fi.RecomputeRealizationPct()
}

// RecomputeRealizationPct refreshes the derived percentage from the
// accumulators. A zero forecast value yields zero percent, never an error.
func (fi *ForecastItem) RecomputeRealizationPct() {
	fv := fi.ForecastValueGNF()
	if fv.LessThanOrEqual(decimal.Zero) {
		fi.RealizationPct = decimal.Zero
		return
	}
	fi.RealizationPct = DivBank(fi.RealizedValueGNF.Mul(oneHundred), fv)
}

// ResetRealization zeroes the accumulators and the derived percentage.
func (fi *ForecastItem) ResetRealization() {
	fi.RealizedQuantity = decimal.Zero
	fi.RealizedValueGNF = decimal.Zero
	fi.RealizationPct = decimal.Zero
}

// Forecast is a dated sales plan whose realization is reconciled from
// validated commercial orders. Rates is the rate book snapshot frozen at
// creation time and used only for display projections.
type Forecast struct {
	ForecastID            string          `json:"forecastID"`
	Name                  string          `json:"name"`
	StartDate             time.Time       `json:"startDate"`
	EndDate               time.Time       `json:"endDate"` // StartDate <= EndDate
	Status                ForecastStatus  `json:"status"`
	Currency              Currency        `json:"currency"`
	Rates                 RateBook        `json:"rates"`
	TotalForecastValueGNF decimal.Decimal `json:"totalForecastValueGNF"`
	TotalRealizedValueGNF decimal.Decimal `json:"totalRealizedValueGNF"`
	Items                 []ForecastItem  `json:"items"`
	Version               int64           `json:"version"` // optimistic concurrency token
	AuditFields
}

// IsActive reports whether the forecast participates in reconciliation.
func (f Forecast) IsActive() bool {
	return f.Status == ForecastActive
}

// Covers reports whether the given calendar date falls inside the forecast
// period, boundaries included.
func (f Forecast) Covers(d time.Time) bool {
	day := dateOnly(d)
	return !day.Before(dateOnly(f.StartDate)) && !day.After(dateOnly(f.EndDate))
}

// RecomputeTotals refreshes both forecast-level totals from the items.
func (f *Forecast) RecomputeTotals() {
	forecastTotal := decimal.Zero
	realizedTotal := decimal.Zero
	for _, fi := range f.Items {
		forecastTotal = forecastTotal.Add(fi.ForecastValueGNF())
		realizedTotal = realizedTotal.Add(fi.RealizedValueGNF)
	}
	f.TotalForecastValueGNF = forecastTotal
	f.TotalRealizedValueGNF = realizedTotal
}

// dateOnly truncates a timestamp to its calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

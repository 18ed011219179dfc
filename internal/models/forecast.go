package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Forecast is the persistence row for a forecast header. Rate columns hold
// the snapshot frozen at creation; Version is the optimistic concurrency
// token bumped on every realization write.
type Forecast struct {
	ForecastID            string          `json:"forecastID"` // Primary Key (UUID)
	Name                  string          `json:"name"`
	StartDate             time.Time       `json:"startDate"`
	EndDate               time.Time       `json:"endDate"`
	Status                string          `json:"status"`
	Currency              string          `json:"currency"`
	RateUSD               decimal.Decimal `json:"rateUSD"`
	RateEUR               decimal.Decimal `json:"rateEUR"`
	RateXOF               decimal.Decimal `json:"rateXOF"`
	TotalForecastValueGNF decimal.Decimal `json:"totalForecastValueGNF"`
	TotalRealizedValueGNF decimal.Decimal `json:"totalRealizedValueGNF"`
	Version               int64           `json:"version"`
	AuditFields
}

// ForecastItem is the persistence row for one stock-item target.
// Accumulators persist with at least 4 fractional digits for quantities and
// 2 for amounts.
type ForecastItem struct {
	ForecastItemID   string          `json:"forecastItemID"` // Primary Key (UUID)
	ForecastID       string          `json:"forecastID"`
	StockItemID      string          `json:"stockItemID"`
	ForecastQuantity decimal.Decimal `json:"forecastQuantity"`
	SellingPriceGNF  decimal.Decimal `json:"sellingPriceGNF"`
	RealizedQuantity decimal.Decimal `json:"realizedQuantity"`
	RealizedValueGNF decimal.Decimal `json:"realizedValueGNF"`
	RealizationPct   decimal.Decimal `json:"realizationPct"`
}

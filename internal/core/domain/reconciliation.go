package domain

import "github.com/shopspring/decimal"

// ReconciliationSummary reports the outcome of a reconciliation run.
type ReconciliationSummary struct {
	OrdersProcessed   int             `json:"ordersProcessed"`
	OrdersFailed      int             `json:"ordersFailed"`
	ForecastsAffected int             `json:"forecastsAffected"`
	RealizedValueGNF  decimal.Decimal `json:"realizedValueGNF"` // total value attributed in this run
}

package dto

import (
	"time"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ForecastItemRequest is one stock-item target of a forecast to create.
type ForecastItemRequest struct {
	StockItemID      string          `json:"stockItemID" validate:"required"`
	ForecastQuantity decimal.Decimal `json:"forecastQuantity"`
	SellingPriceGNF  decimal.Decimal `json:"sellingPriceGNF"`
}

// CreateForecastRequest defines the structure for creating a new forecast.
// Rates become the aggregate's frozen snapshot; accumulators start at zero.
type CreateForecastRequest struct {
	Name      string                     `json:"name" validate:"required"`
	StartDate time.Time                  `json:"startDate" validate:"required"`
	EndDate   time.Time                  `json:"endDate" validate:"required"`
	Currency  string                     `json:"currency" validate:"required,oneof=GNF USD EUR XOF"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	Items     []ForecastItemRequest      `json:"items" validate:"required,min=1,dive"`
}

// Validate applies tag validation plus cross-field and decimal rules.
func (r CreateForecastRequest) Validate() error {
	if err := checkStruct(r); err != nil {
		return err
	}
	if r.EndDate.Before(r.StartDate) {
		return validationErrorf("end date %s precedes start date %s",
			r.EndDate.Format(time.DateOnly), r.StartDate.Format(time.DateOnly))
	}
	for c, rate := range r.Rates {
		if !domain.Currency(c).IsSupported() {
			return validationErrorf("unsupported currency %q in rate snapshot", c)
		}
		if rate.IsNegative() {
			return validationErrorf("rate for %s must not be negative", c)
		}
	}
	for i, item := range r.Items {
		if !item.ForecastQuantity.IsPositive() {
			return validationErrorf("item %d: forecast quantity must be positive", i)
		}
		if item.SellingPriceGNF.IsNegative() {
			return validationErrorf("item %d: selling price must not be negative", i)
		}
	}
	return nil
}

// ToDomain builds the forecast aggregate in draft status with zeroed
// accumulators and the rate snapshot attached.
func (r CreateForecastRequest) ToDomain(forecastID string, itemIDs []string) domain.Forecast {
	rates := make(domain.RateBook, len(r.Rates))
	for c, rate := range r.Rates {
		rates[domain.Currency(c)] = rate
	}
	items := make([]domain.ForecastItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.ForecastItem{
			ForecastItemID:   itemIDs[i],
			StockItemID:      item.StockItemID,
			ForecastQuantity: item.ForecastQuantity,
			SellingPriceGNF:  item.SellingPriceGNF,
			RealizedQuantity: decimal.Zero,
			RealizedValueGNF: decimal.Zero,
			RealizationPct:   decimal.Zero,
		}
	}
	f := domain.Forecast{
		ForecastID: forecastID,
		Name:       r.Name,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Status:     domain.ForecastDraft,
		Currency:   domain.Currency(r.Currency),
		Rates:      rates,
		Items:      items,
	}
	f.RecomputeTotals()
	return f
}

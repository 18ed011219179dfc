package mapping

import (
	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/mkouyate/import_erp_app/internal/models"
)

// ToModelForecast converts a domain Forecast to a model Forecast
func ToModelForecast(d domain.Forecast) models.Forecast {
	usd, eur, xof := FlattenRateBook(d.Rates)
	return models.Forecast{
		ForecastID:            d.ForecastID,
		Name:                  d.Name,
		StartDate:             d.StartDate,
		EndDate:               d.EndDate,
		Status:                string(d.Status),
		Currency:              string(d.Currency),
		RateUSD:               usd,
		RateEUR:               eur,
		RateXOF:               xof,
		TotalForecastValueGNF: d.TotalForecastValueGNF,
		TotalRealizedValueGNF: d.TotalRealizedValueGNF,
		Version:               d.Version,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToModelForecastItem converts a domain ForecastItem to a model ForecastItem
func ToModelForecastItem(forecastID string, d domain.ForecastItem) models.ForecastItem {
	return models.ForecastItem{
		ForecastItemID:   d.ForecastItemID,
		ForecastID:       forecastID,
		StockItemID:      d.StockItemID,
		ForecastQuantity: d.ForecastQuantity,
		SellingPriceGNF:  d.SellingPriceGNF,
		RealizedQuantity: d.RealizedQuantity,
		RealizedValueGNF: d.RealizedValueGNF,
		RealizationPct:   d.RealizationPct,
	}
}

// ToDomainForecast converts a model Forecast and its items to a domain Forecast
func ToDomainForecast(m models.Forecast, items []models.ForecastItem) domain.Forecast {
	d := domain.Forecast{
		ForecastID:            m.ForecastID,
		Name:                  m.Name,
		StartDate:             m.StartDate,
		EndDate:               m.EndDate,
		Status:                domain.ForecastStatus(m.Status),
		Currency:              domain.Currency(m.Currency),
		Rates:                 ToDomainRateBook(m.RateUSD, m.RateEUR, m.RateXOF),
		TotalForecastValueGNF: m.TotalForecastValueGNF,
		TotalRealizedValueGNF: m.TotalRealizedValueGNF,
		Version:               m.Version,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
	d.Items = make([]domain.ForecastItem, 0, len(items))
	for _, item := range items {
		d.Items = append(d.Items, ToDomainForecastItem(item))
	}
	return d
}

// ToDomainForecastItem converts a model ForecastItem to a domain ForecastItem
func ToDomainForecastItem(m models.ForecastItem) domain.ForecastItem {
	return domain.ForecastItem{
		ForecastItemID:   m.ForecastItemID,
		StockItemID:      m.StockItemID,
		ForecastQuantity: m.ForecastQuantity,
		SellingPriceGNF:  m.SellingPriceGNF,
		RealizedQuantity: m.RealizedQuantity,
		RealizedValueGNF: m.RealizedValueGNF,
		RealizationPct:   m.RealizationPct,
	}
}

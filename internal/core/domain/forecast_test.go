package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestForecast_Covers(t *testing.T) {
	f := domain.Forecast{
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.March, 31),
	}

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"inside period", date(2024, time.February, 10), true},
		{"start boundary", date(2024, time.January, 1), true},
		{"end boundary", date(2024, time.March, 31), true},
		{"end boundary late in the day", time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC), true},
		{"before period", date(2023, time.December, 31), false},
		{"after period", date(2024, time.April, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Covers(tt.d))
		})
	}
}

func TestForecastItem_AddRealization(t *testing.T) {
	item := domain.ForecastItem{
		ForecastQuantity: decimal.NewFromInt(100),
		SellingPriceGNF:  decimal.NewFromInt(50000),
	}

	item.AddRealization(decimal.NewFromInt(30), decimal.NewFromInt(1650000))

	assert.True(t, item.RealizedQuantity.Equal(decimal.NewFromInt(30)))
	assert.True(t, item.RealizedValueGNF.Equal(decimal.NewFromInt(1650000)))
	assert.True(t, item.RealizationPct.Equal(decimal.NewFromInt(33)), "got %s", item.RealizationPct)

	// A second order accumulates, it never replaces.
	item.AddRealization(decimal.NewFromInt(20), decimal.NewFromInt(1200000))

	assert.True(t, item.RealizedQuantity.Equal(decimal.NewFromInt(50)))
	assert.True(t, item.RealizedValueGNF.Equal(decimal.NewFromInt(2850000)))
	assert.True(t, item.RealizationPct.Equal(decimal.NewFromInt(57)), "got %s", item.RealizationPct)
}

func TestForecastItem_RecomputeRealizationPct_ZeroForecastValue(t *testing.T) {
	item := domain.ForecastItem{
		ForecastQuantity: decimal.NewFromInt(10),
		SellingPriceGNF:  decimal.Zero,
	}
	item.AddRealization(decimal.NewFromInt(5), decimal.NewFromInt(100000))

	assert.True(t, item.RealizationPct.IsZero(), "zero forecast value must yield zero percent")
}

func TestForecastItem_ResetRealization(t *testing.T) {
	item := domain.ForecastItem{
		ForecastQuantity: decimal.NewFromInt(100),
		SellingPriceGNF:  decimal.NewFromInt(50000),
	}
	item.AddRealization(decimal.NewFromInt(30), decimal.NewFromInt(1650000))
	item.ResetRealization()

	assert.True(t, item.RealizedQuantity.IsZero())
	assert.True(t, item.RealizedValueGNF.IsZero())
	assert.True(t, item.RealizationPct.IsZero())
}

func TestForecast_RecomputeTotals(t *testing.T) {
	f := domain.Forecast{
		Items: []domain.ForecastItem{
			{
				ForecastQuantity: decimal.NewFromInt(100),
				SellingPriceGNF:  decimal.NewFromInt(50000),
				RealizedValueGNF: decimal.NewFromInt(1650000),
			},
			{
				ForecastQuantity: decimal.NewFromInt(40),
				SellingPriceGNF:  decimal.NewFromInt(25000),
				RealizedValueGNF: decimal.NewFromInt(500000),
			},
		},
	}
	f.RecomputeTotals()

	assert.True(t, f.TotalForecastValueGNF.Equal(decimal.NewFromInt(6000000)), "got %s", f.TotalForecastValueGNF)
	assert.True(t, f.TotalRealizedValueGNF.Equal(decimal.NewFromInt(2150000)), "got %s", f.TotalRealizedValueGNF)
}

func TestForecast_IsActive(t *testing.T) {
	assert.True(t, domain.Forecast{Status: domain.ForecastActive}.IsActive())
	assert.False(t, domain.Forecast{Status: domain.ForecastDraft}.IsActive())
	assert.False(t, domain.Forecast{Status: domain.ForecastCompleted}.IsActive())
	assert.False(t, domain.Forecast{Status: domain.ForecastArchived}.IsActive())
}

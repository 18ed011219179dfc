package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
)

func TestPriceList_ActiveAt(t *testing.T) {
	end := date(2024, time.June, 30)
	list := domain.PriceList{
		IsActive:  true,
		StartDate: date(2024, time.January, 1),
		EndDate:   &end,
	}

	assert.True(t, list.ActiveAt(date(2024, time.March, 15)))
	assert.True(t, list.ActiveAt(date(2024, time.January, 1)))
	assert.True(t, list.ActiveAt(date(2024, time.June, 30)))
	assert.False(t, list.ActiveAt(date(2023, time.December, 31)))
	assert.False(t, list.ActiveAt(date(2024, time.July, 1)))

	t.Run("inactive list never applies", func(t *testing.T) {
		inactive := list
		inactive.IsActive = false
		assert.False(t, inactive.ActiveAt(date(2024, time.March, 15)))
	})

	t.Run("nil end date is open-ended", func(t *testing.T) {
		open := list
		open.EndDate = nil
		assert.True(t, open.ActiveAt(date(2030, time.December, 31)))
	})
}

func TestPriceList_FindByName(t *testing.T) {
	wholesale := decimal.NewFromInt(450000)
	list := domain.PriceList{
		Items: []domain.PriceListItem{
			{ProductName: "Riz parfumé 25kg", WholesalePriceGNF: &wholesale, RetailPriceGNF: decimal.NewFromInt(500000)},
			{ProductName: "Huile 20L", RetailPriceGNF: decimal.NewFromInt(350000)},
		},
	}

	entry := list.FindByName("riz PARFUMÉ 25kg")
	require.NotNil(t, entry)
	assert.Equal(t, "Riz parfumé 25kg", entry.ProductName)

	assert.Nil(t, list.FindByName("Sucre 50kg"))
	assert.Nil(t, list.FindByName("Riz"))
}

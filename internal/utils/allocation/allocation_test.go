package allocation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/mkouyate/import_erp_app/internal/utils/allocation"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAllocate_Proportionality(t *testing.T) {
	pool := decimal.NewFromInt(3814500)
	weights := []decimal.Decimal{decimal.NewFromInt(12750000), decimal.NewFromInt(34000000)}

	shares, err := allocation.Allocate(pool, weights)
	require.NoError(t, err)
	require.Len(t, shares, 2)

	// 12,750,000 / 46,750,000 reduces to 3/11.
	assert.True(t, shares[0].Equal(dec("1040318.18181818")), "got %s", shares[0])
	assert.True(t, shares[1].Equal(dec("2774181.81818182")), "got %s", shares[1])

	// The rounded shares are complementary here and sum back to the pool.
	assert.True(t, shares[0].Add(shares[1]).Equal(pool))
}

func TestAllocate_WeightBasisShares(t *testing.T) {
	pool := decimal.NewFromInt(3814500)
	weights := []decimal.Decimal{dec("2.0"), dec("12.5")}

	shares, err := allocation.Allocate(pool, weights)
	require.NoError(t, err)

	assert.True(t, shares[0].Equal(dec("526137.93103448")), "got %s", shares[0])
	assert.True(t, shares[1].Equal(dec("3288362.06896552")), "got %s", shares[1])
	assert.True(t, shares[0].Add(shares[1]).Equal(pool))
}

func TestAllocate_ExactSplit(t *testing.T) {
	pool := decimal.NewFromInt(1000)
	weights := []decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromInt(3)}

	shares, err := allocation.Allocate(pool, weights)
	require.NoError(t, err)
	assert.True(t, shares[0].Equal(decimal.NewFromInt(250)))
	assert.True(t, shares[1].Equal(decimal.NewFromInt(750)))
}

func TestAllocate_ZeroWeightLineGetsNothing(t *testing.T) {
	shares, err := allocation.Allocate(decimal.NewFromInt(100), []decimal.Decimal{
		decimal.Zero, decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.True(t, shares[0].IsZero())
	assert.True(t, shares[1].Equal(decimal.NewFromInt(100)))
}

func TestAllocate_AllWeightsZero(t *testing.T) {
	shares, err := allocation.Allocate(decimal.NewFromInt(100), []decimal.Decimal{decimal.Zero, decimal.Zero})
	require.NoError(t, err)
	for i, share := range shares {
		assert.True(t, share.IsZero(), "share %d", i)
	}
}

func TestAllocate_ZeroPool(t *testing.T) {
	shares, err := allocation.Allocate(decimal.Zero, []decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromInt(2)})
	require.NoError(t, err)
	for i, share := range shares {
		assert.True(t, share.IsZero(), "share %d", i)
	}
}

func TestAllocate_Errors(t *testing.T) {
	_, err := allocation.Allocate(decimal.NewFromInt(-1), []decimal.Decimal{decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, allocation.ErrNegativePool)

	_, err = allocation.Allocate(decimal.NewFromInt(10), []decimal.Decimal{decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, allocation.ErrNegativeWeight)
}

func TestAllocate_EmptyWeights(t *testing.T) {
	shares, err := allocation.Allocate(decimal.NewFromInt(10), nil)
	require.NoError(t, err)
	assert.Empty(t, shares)
}

func TestWeightsFor(t *testing.T) {
	values := []decimal.Decimal{decimal.NewFromInt(100)}
	masses := []decimal.Decimal{decimal.NewFromInt(5)}

	got, err := allocation.WeightsFor(domain.BasisValue, values, masses)
	require.NoError(t, err)
	assert.Equal(t, values, got)

	got, err = allocation.WeightsFor(domain.BasisWeight, values, masses)
	require.NoError(t, err)
	assert.Equal(t, masses, got)

	_, err = allocation.WeightsFor(domain.CostBasis("volume"), values, masses)
	assert.ErrorIs(t, err, allocation.ErrInvalidBasis)
}

package allocation

import (
	"errors"
	"fmt"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBasis   = errors.New("unknown allocation basis")
	ErrNegativePool   = errors.New("allocation pool must not be negative")
	ErrNegativeWeight = errors.New("allocation weights must not be negative")
)

// allocationScale is the fractional precision applied when a share is inexact.
const allocationScale = 8

// Allocate prorates pool over the given weights: share_i = pool x w_i / sum(w).
// When every weight is zero the pool is not distributable and all shares are
// zero. Shares are bank-rounded at 8 fractional digits; there is no
// redistribution of rounding residue.
func Allocate(pool decimal.Decimal, weights []decimal.Decimal) ([]decimal.Decimal, error) {
	if pool.IsNegative() {
		return nil, fmt.Errorf("%w: pool is %s", ErrNegativePool, pool)
	}

	sum := decimal.Zero
	for i, w := range weights {
		if w.IsNegative() {
			return nil, fmt.Errorf("%w: weight %d is %s", ErrNegativeWeight, i, w)
		}
		sum = sum.Add(w)
	}

	shares := make([]decimal.Decimal, len(weights))
	if sum.IsZero() {
		for i := range shares {
			shares[i] = decimal.Zero
		}
		return shares, nil
	}

	for i, w := range weights {
		shares[i] = pool.Mul(w).Div(sum).RoundBank(allocationScale)
	}
	return shares, nil
}

// WeightsFor selects the per-line allocation weights for the given basis:
// purchase values for BasisValue, masses for BasisWeight. Both slices are the
// line totals (unit value or unit mass already multiplied by quantity).
func WeightsFor(basis domain.CostBasis, purchaseValuesGNF, massesKg []decimal.Decimal) ([]decimal.Decimal, error) {
	switch basis {
	case domain.BasisValue:
		return purchaseValuesGNF, nil
	case domain.BasisWeight:
		return massesKg, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidBasis, basis)
	}
}

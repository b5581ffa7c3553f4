package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerkit/moneykit/pkg/apperrors"
)

// Split divides the amount into exactly n parts whose minor-unit amounts sum to
// the original. The base share is the floor quotient and the floor-mod remainder
// is spread one minor unit at a time: for non-negative amounts the first parts
// receive the extra unit, for negative amounts the last parts do (making them
// less negative). Either way the larger-magnitude parts come first, so
// 10000 cents split three ways is [3334 3333 3333] and -10000 cents is
// [-3334 -3333 -3333].
func (m Money) Split(n int) ([]Money, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: cannot split into %d parts", apperrors.ErrInvalidArgument, n)
	}

	base := floorDiv(m.amount, int64(n))
	remainder := m.amount - base*int64(n) // non-negative by floor semantics

	parts := make([]Money, n)
	for i := 0; i < n; i++ {
		extra := int64(0)
		if m.amount >= 0 {
			if int64(i) < remainder {
				extra = 1
			}
		} else {
			if int64(i) >= int64(n)-remainder {
				extra = 1
			}
		}
		parts[i] = Money{amount: base + extra, currency: m.currency}
	}
	return parts, nil
}

// Allocate distributes the amount proportionally according to the given ratios.
// Each part is the amount scaled by its ratio's share of the ratio sum, rounded
// half away from zero to the nearest minor unit independently; whatever rounding
// residue remains is then added to the first part so the parts always sum to the
// original exactly. The ratios need not sum to 1 or 100.
func (m Money) Allocate(ratios ...decimal.Decimal) ([]Money, error) {
	if len(ratios) == 0 {
		return nil, fmt.Errorf("%w: allocation ratios must not be empty", apperrors.ErrInvalidArgument)
	}

	total := decimal.Zero
	for _, r := range ratios {
		total = total.Add(r)
	}
	if total.IsZero() {
		return nil, fmt.Errorf("%w: allocation ratios must not sum to zero", apperrors.ErrInvalidArgument)
	}

	amount := decimal.New(m.amount, 0)
	parts := make([]Money, len(ratios))
	var allocated int64
	for i, r := range ratios {
		share := amount.Mul(r).DivRound(total, 0).IntPart()
		parts[i] = Money{amount: share, currency: m.currency}
		allocated += share
	}

	// Rounding residue reconciles into the first part.
	if diff := m.amount - allocated; diff != 0 {
		parts[0].amount += diff
	}
	return parts, nil
}

// AllocateInts is Allocate for plain integer ratios.
func (m Money) AllocateInts(ratios ...int64) ([]Money, error) {
	ds := make([]decimal.Decimal, len(ratios))
	for i, r := range ratios {
		ds[i] = decimal.NewFromInt(r)
	}
	return m.Allocate(ds...)
}

package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerkit/moneykit/pkg/apperrors"
)

// Money is an immutable monetary amount in a specific currency.
//
// The amount is stored as an integer count of the currency's minor units (cents
// for USD); no floating point is retained. Every arithmetic step that can produce
// a fractional minor-unit count goes through exact decimal arithmetic and is then
// rounded half away from zero back to an integer. Operations between two Money
// values require identical currencies and return a currency-mismatch error
// otherwise; amounts are never coerced across currencies.
//
// The zero value Money{} acts as an additive identity (see Add), which lets a
// fold over a slice start from an uninitialized accumulator.
type Money struct {
	amount   int64
	currency Currency
}

// Mint converts a decimal amount of major units into Money, rounding half away
// from zero at the currency's minor-unit scale. Mint(10.125, USD) is 1013 cents.
func Mint(amount decimal.Decimal, cur Currency) Money {
	minor := amount.Mul(decimal.NewFromInt(cur.SubUnitsPerUnit)).Round(0)
	return Money{amount: minor.IntPart(), currency: cur}
}

// MintFloat64 is Mint for a float64 amount. The float is converted through its
// shortest decimal representation, so 29.99 mints as exactly 2999 cents.
func MintFloat64(f float64, cur Currency) Money {
	return Mint(decimal.NewFromFloat(f), cur)
}

// MintString is Mint for a decimal string such as "29.99".
func MintString(s string, cur Currency) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a decimal amount", apperrors.ErrValidation, s)
	}
	return Mint(d, cur), nil
}

// FromMinorUnits builds Money directly from a minor-unit count, with no rounding.
// This is the reconstruction half of the lossless (minor units, ISO code) round
// trip used for storage and transport.
func FromMinorUnits(n int64, cur Currency) Money {
	return Money{amount: n, currency: cur}
}

// Zero returns a zero amount of the given currency.
func Zero(cur Currency) Money {
	return Money{currency: cur}
}

// MinorUnits returns the amount as an integer count of minor units.
func (m Money) MinorUnits() int64 {
	return m.amount
}

// Currency returns the money's currency descriptor.
func (m Money) Currency() Currency {
	return m.currency
}

// Amount returns the amount in major units as a decimal at the currency's
// display precision, e.g. 2999 cents as 29.99.
func (m Money) Amount() decimal.Decimal {
	return decimal.New(m.amount, 0).DivRound(decimal.NewFromInt(m.currency.SubUnitsPerUnit), m.currency.Precision)
}

// DollarsPart returns the whole major-unit part, truncating toward zero:
// -2999 cents has a DollarsPart of -29, not -30.
func (m Money) DollarsPart() int64 {
	abs := m.amount
	if abs < 0 {
		abs = -abs
	}
	part := abs / m.currency.SubUnitsPerUnit
	if m.amount < 0 {
		return -part
	}
	return part
}

// MinorUnitsPart returns the minor-unit remainder, always non-negative:
// -2999 cents has a MinorUnitsPart of 99.
func (m Money) MinorUnitsPart() int64 {
	abs := m.amount
	if abs < 0 {
		abs = -abs
	}
	return abs % m.currency.SubUnitsPerUnit
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.amount == 0 }

// IsPositive reports whether the amount is strictly positive.
func (m Money) IsPositive() bool { return m.amount > 0 }

// IsNegative reports whether the amount is strictly negative.
func (m Money) IsNegative() bool { return m.amount < 0 }

// isIdentity reports whether m is the uninitialized zero value, which Add
// accepts as an identity element regardless of the other operand's currency.
func (m Money) isIdentity() bool {
	return m.amount == 0 && m.currency == Currency{}
}

// Add returns the sum of two amounts of the same currency. The integer addition
// is exact; no rounding occurs. The zero value Money{} is accepted on either
// side and returns the other operand unchanged, so sums can fold from an
// uninitialized accumulator.
func (m Money) Add(other Money) (Money, error) {
	if other.isIdentity() {
		return m, nil
	}
	if m.isIdentity() {
		return other, nil
	}
	if err := m.checkSameCurrency(other, "add"); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Sub returns the difference of two amounts of the same currency.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.checkSameCurrency(other, "subtract"); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// Sum folds any number of Money values into a total of the given currency,
// starting from Zero(cur). It fails on the first currency mismatch.
func Sum(cur Currency, ms ...Money) (Money, error) {
	total := Zero(cur)
	for _, m := range ms {
		var err error
		total, err = total.Add(m)
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}

// Mul multiplies the amount by a scalar, rounding the result half away from
// zero to the nearest minor unit. The multiplication itself is exact decimal
// arithmetic; only the final minor-unit conversion rounds.
func (m Money) Mul(scalar decimal.Decimal) Money {
	result := decimal.New(m.amount, 0).Mul(scalar).Round(0)
	return Money{amount: result.IntPart(), currency: m.currency}
}

// Div divides the amount by a scalar, rounding half away from zero to the
// nearest minor unit. Dividing by zero is an error.
func (m Money) Div(scalar decimal.Decimal) (Money, error) {
	if scalar.IsZero() {
		return Money{}, fmt.Errorf("%w: cannot divide money by zero", apperrors.ErrDivisionByZero)
	}
	result := decimal.New(m.amount, 0).DivRound(scalar, 0)
	return Money{amount: result.IntPart(), currency: m.currency}, nil
}

// FloorDiv divides the minor-unit amount by an integer scalar, rounding the
// quotient toward negative infinity. Dividing by zero is an error.
func (m Money) FloorDiv(n int64) (Money, error) {
	if n == 0 {
		return Money{}, fmt.Errorf("%w: cannot divide money by zero", apperrors.ErrDivisionByZero)
	}
	return Money{amount: floorDiv(m.amount, n), currency: m.currency}, nil
}

// Neg returns the amount with its sign flipped.
func (m Money) Neg() Money {
	return Money{amount: -m.amount, currency: m.currency}
}

// Abs returns the absolute amount.
func (m Money) Abs() Money {
	if m.amount < 0 {
		return m.Neg()
	}
	return m
}

// Equal reports whether both currency and amount match. Unlike the ordered
// comparisons it never fails: different currencies are simply not equal.
func (m Money) Equal(other Money) bool {
	return m.currency.Equal(other.currency) && m.amount == other.amount
}

// Compare orders two amounts of the same currency, returning -1, 0, or 1.
func (m Money) Compare(other Money) (int, error) {
	if err := m.checkSameCurrency(other, "compare"); err != nil {
		return 0, err
	}
	switch {
	case m.amount < other.amount:
		return -1, nil
	case m.amount > other.amount:
		return 1, nil
	default:
		return 0, nil
	}
}

// LessThan reports m < other for amounts of the same currency.
func (m Money) LessThan(other Money) (bool, error) {
	cmp, err := m.Compare(other)
	return cmp < 0, err
}

// LessThanOrEqual reports m <= other for amounts of the same currency.
func (m Money) LessThanOrEqual(other Money) (bool, error) {
	cmp, err := m.Compare(other)
	return cmp <= 0, err
}

// GreaterThan reports m > other for amounts of the same currency.
func (m Money) GreaterThan(other Money) (bool, error) {
	cmp, err := m.Compare(other)
	return cmp > 0, err
}

// GreaterThanOrEqual reports m >= other for amounts of the same currency.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	cmp, err := m.Compare(other)
	return cmp >= 0, err
}

// SameCurrency reports whether both values share a currency.
func (m Money) SameCurrency(other Money) bool {
	return m.currency.Equal(other.currency)
}

func (m Money) checkSameCurrency(other Money, action string) error {
	if !m.currency.Equal(other.currency) {
		return fmt.Errorf("%w: cannot %s %s and %s", apperrors.ErrCurrencyMismatch, action, m.currency.Code, other.currency.Code)
	}
	return nil
}

// floorDiv rounds the quotient toward negative infinity, unlike Go's native
// integer division which truncates toward zero.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

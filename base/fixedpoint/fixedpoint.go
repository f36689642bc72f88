// Package fixedpoint implements the scaled-integer arithmetic behind
// reference rates. Prices and rates are unsigned integers scaled by 1e18
// and bounded to 128 bits on the wire; intermediates use big.Int so the
// multiply never truncates before the divide.
package fixedpoint

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/x-oracle/refapi/domain"
)

// ScaleDecimals is the implicit decimal exponent of every stored price
// and every returned rate.
const ScaleDecimals = 18

var (
	scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(ScaleDecimals), nil)
	// limit is 2^128, the first value outside the representable range.
	limit = new(big.Int).Lsh(big.NewInt(1), 128)
)

// Scale returns 1e18. The result is a fresh copy, callers may mutate it.
func Scale() *big.Int {
	return new(big.Int).Set(scale)
}

// InRange reports whether v fits the unsigned 128-bit domain.
func InRange(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(limit) < 0
}

// Rate computes basePrice * 1e18 / quotePrice. The division truncates
// (floor, since operands are non-negative); that truncation is the only
// lossy step in a pair resolution. The multiply happens before the
// divide in arbitrary precision, so no intermediate overflow is
// possible; only the final result is range-checked.
func Rate(basePrice, quotePrice *big.Int) (*big.Int, error) {
	if basePrice == nil || quotePrice == nil || !InRange(basePrice) || !InRange(quotePrice) {
		return nil, domain.ErrBadParamInput
	}
	if quotePrice.Sign() == 0 {
		return nil, domain.ErrDivisionByZero
	}
	rate := new(big.Int).Mul(basePrice, scale)
	rate.Quo(rate, quotePrice)
	if rate.Cmp(limit) >= 0 {
		return nil, domain.ErrOverflow
	}
	return rate, nil
}

// Parse reads a base-10 integer string into the unsigned 128-bit domain.
func Parse(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	if !InRange(v) {
		return nil, domain.ErrInvalidNumberFormat
	}
	return v, nil
}

// FromDecimal converts a display-scale price (e.g. "23131.27") into its
// 1e18-scaled integer form. Prices with more than 18 fractional digits
// are rejected rather than silently rounded.
func FromDecimal(d decimal.Decimal) (*big.Int, error) {
	scaled := d.Shift(ScaleDecimals)
	if !scaled.IsInteger() {
		return nil, domain.ErrBadParamInput
	}
	v := scaled.BigInt()
	if v.Sign() < 0 {
		return nil, domain.ErrBadParamInput
	}
	if !InRange(v) {
		return nil, domain.ErrOverflow
	}
	return v, nil
}

// ToDecimal renders a 1e18-scaled integer back at display scale.
func ToDecimal(v *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(v, 0).Shift(-ScaleDecimals)
}

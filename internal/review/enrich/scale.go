// Package enrich attaches pool and validator breakdowns to pool unit, liquid stake unit and
// stake claim transfers.
package enrich

import "github.com/shopspring/decimal"

// scalePrecision is the number of fractional digits kept before truncating to divisibility.
const scalePrecision = 18

// scale returns amount × part / whole, truncated to divisibility fractional digits.
// When part equals whole the amount is returned unchanged.
func scale(amount, part, whole decimal.Decimal, divisibility uint8) decimal.Decimal {
	if part.Equal(whole) {
		return amount
	}
	quotient, _ := amount.Mul(part).QuoRem(whole, scalePrecision)
	return quotient.Truncate(int32(divisibility))
}

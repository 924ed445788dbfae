package calc

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Prices outside this window are treated as unparseable. The exponent
// bounds are checked before anything rescales the value, so text such as
// "1e999999999" is rejected without building a huge integer.
const (
	maxExponent = 30
	minExponent = -60
)

var maxPrice = decimal.New(1, maxExponent)

// inRange reports whether d is small enough to price.
func inRange(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}
	exp := d.Exponent()
	if exp > maxExponent || exp < minExponent {
		return false
	}
	return d.Abs().LessThanOrEqual(maxPrice)
}

// ToNumber coerces a cell value to a number.
// Strings are trimmed and parsed; NaN, infinities, booleans, values
// beyond 1e30 and unparseable text yield false. It never fails.
func ToNumber(v interface{}) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case int64:
		return decimal.NewFromInt(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Decimal{}, false
		}
		d := decimal.NewFromFloat(n)
		return d, inRange(d)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Decimal{}, false
		}
		if !inRange(d) {
			return decimal.Decimal{}, false
		}
		return d, true
	}
	return decimal.Decimal{}, false
}

// Ceiling returns floor(price * rate) as an integer.
// The product is exact, so 100 * 0.29 floors to 29, not 28.
// False is returned when the result does not fit in an int64.
func Ceiling(price, rate decimal.Decimal) (int64, bool) {
	if !inRange(price) || !inRange(rate) {
		return 0, false
	}
	v := price.Mul(rate).Floor()
	bi := v.BigInt()
	if !bi.IsInt64() {
		return 0, false
	}
	return bi.Int64(), true
}

// numberValue converts a coerced number back to a cell value.
func numberValue(d decimal.Decimal) interface{} {
	if d.IsInteger() {
		if bi := d.BigInt(); bi.IsInt64() {
			return bi.Int64()
		}
	}
	f, _ := d.Float64()
	return f
}

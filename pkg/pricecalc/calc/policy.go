// Package calc derives ceiling prices from the purchase price of each row.
package calc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var ten = decimal.NewFromInt(10)

// Discount is the pair of multipliers applied to the purchase price of one sheet.
type Discount struct {
	// Recycling is the multiplier for the recycling ceiling (0.55 = 5.5 fold).
	Recycling decimal.Decimal
	// NoRecycling is the multiplier for the no-recycling ceiling.
	NoRecycling decimal.Decimal
}

// Label renders the discount the way buyers quote it, e.g. "回采5.5折, 无回采4.8折".
func (d Discount) Label() string {
	return fmt.Sprintf("回采%s折, 无回采%s折", foldString(d.Recycling), foldString(d.NoRecycling))
}

func foldString(rate decimal.Decimal) string {
	return rate.Mul(ten).String()
}

// Policy maps a sheet position (0-based) to its discount.
type Policy struct {
	tiers []Discount
}

// DefaultPolicy returns the fixed discounts: the first sheet gets
// 5.5/4.8 fold, the second 4/3 fold. Later sheets are not priced.
func DefaultPolicy() Policy {
	return Policy{
		tiers: []Discount{
			{
				Recycling:   decimal.RequireFromString("0.55"),
				NoRecycling: decimal.RequireFromString("0.48"),
			},
			{
				Recycling:   decimal.RequireFromString("0.4"),
				NoRecycling: decimal.RequireFromString("0.3"),
			},
		},
	}
}

// RateForSheet returns the discount for the sheet at position.
// The second result is false when the sheet must be passed through unchanged.
func (p Policy) RateForSheet(position int) (Discount, bool) {
	if position < 0 || position >= len(p.tiers) {
		return Discount{}, false
	}
	return p.tiers[position], true
}

// Len returns the number of configured sheet positions.
func (p Policy) Len() int {
	return len(p.tiers)
}

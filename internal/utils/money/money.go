// Package money holds the monetary normalization rules shared by every
// component that computes or stores an amount.
package money

import "github.com/shopspring/decimal"

var five = decimal.NewFromInt(5)

// RoundToNearestFive normalizes value to a multiple of 5. The nearest
// multiple is taken first (ties away from zero); whenever that lands below
// the input the next multiple up is used instead, so the result never
// understates the value it normalizes.
func RoundToNearestFive(value decimal.Decimal) decimal.Decimal {
	rounded := value.Div(five).Round(0).Mul(five)
	if rounded.LessThan(value) {
		rounded = rounded.Add(five)
	}
	return rounded
}

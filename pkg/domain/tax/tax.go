// Package tax computes the tax amount and branch profit for a transfer.
// The computation is pure: the branch tax rate is frozen onto the
// transaction at creation time, so later rate changes never alter it.
package tax

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidArgument is returned when the benefited amount is negative or
// the tax rate is outside [0, 1].
var ErrInvalidArgument = errors.New("invalid tax calculation argument")

// scale is the number of decimal places tax and profit are rounded to.
// Both SYP and USD settle at two decimal places.
const scale = 2

var one = decimal.NewFromInt(1)

// Compute derives the tax amount and the branch profit from the taxable
// (benefited) portion of a transfer.
//
//	taxAmount    = round(benefited * rate, 2)   (banker's rounding)
//	branchProfit = benefited - taxAmount
//
// Profit is computed as the remainder so the two always sum back to the
// benefited amount exactly, with no rounding leak.
func Compute(benefited, rate decimal.Decimal) (taxAmount, branchProfit decimal.Decimal, err error) {
	if benefited.IsNegative() {
		return decimal.Zero, decimal.Zero, ErrInvalidArgument
	}
	if rate.IsNegative() || rate.GreaterThan(one) {
		return decimal.Zero, decimal.Zero, ErrInvalidArgument
	}
	taxAmount = benefited.Mul(rate).RoundBank(scale)
	branchProfit = benefited.Sub(taxAmount)
	return taxAmount, branchProfit, nil
}

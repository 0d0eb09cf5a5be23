// Package money provides the Money value object used for every monetary
// amount in the system. Amounts are decimal, never binary floating point,
// and are rounded half-to-even at the currency's decimal places.
package money

import (
	"errors"
	"fmt"

	"github.com/qasioun/remit/pkg/currency"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnsupportedCurrency is returned when a currency code is not part of
	// the network's fixed enumeration.
	ErrUnsupportedCurrency = errors.New("unsupported currency code")
	// ErrCurrencyMismatch is returned when arithmetic mixes two currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Money represents a monetary value in a specific currency.
//
// Invariants:
//   - The amount carries at most the currency's decimal places.
//   - All arithmetic operations require matching currencies.
type Money struct {
	amount   decimal.Decimal
	currency currency.Code
}

// New creates a Money value, rounding half-to-even at the currency's
// decimal places. Returns ErrUnsupportedCurrency for unknown codes.
func New(amount decimal.Decimal, code currency.Code) (Money, error) {
	meta, err := currency.Get(code)
	if err != nil {
		return Money{}, ErrUnsupportedCurrency
	}
	return Money{amount: amount.RoundBank(int32(meta.Decimals)), currency: code}, nil
}

// NewFromString parses a decimal string into a Money value.
func NewFromString(amount string, code currency.Code) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return New(d, code)
}

// Zero returns the zero amount in the given currency.
func Zero(code currency.Code) Money {
	return Money{amount: decimal.Zero, currency: code}
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the currency code.
func (m Money) Currency() currency.Code { return m.currency }

// Add returns the sum of two amounts in the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns the difference of two amounts in the same currency.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, ErrCurrencyMismatch
	}
	return m.amount.LessThan(other.amount), nil
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// Equals reports whether two Money values have the same currency and amount.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String formats the amount with the currency's decimal places and code.
func (m Money) String() string {
	meta, err := currency.Get(m.currency)
	if err != nil {
		return m.amount.String()
	}
	return fmt.Sprintf("%s %s", m.amount.StringFixedBank(int32(meta.Decimals)), m.currency)
}

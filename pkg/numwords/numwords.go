// Package numwords renders monetary amounts as natural-language number
// phrases for settlement receipts. Only the integer part of an amount is
// rendered; fractional subunits are not spelled out.
package numwords

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Locale selects the number-naming rules used for rendering.
type Locale string

const (
	// Arabic renders amounts with Arabic grammar, including the
	// singular/dual/plural agreement of grouping words.
	Arabic Locale = "ar"
	// English renders amounts in plain English.
	English Locale = "en"
)

var (
	// ErrNegativeAmount is returned for amounts below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrUnsupportedLocale is returned for locales with no renderer.
	ErrUnsupportedLocale = errors.New("unsupported locale")
	// ErrAmountTooLarge is returned for amounts of a trillion or more,
	// which no transfer in the network can reach.
	ErrAmountTooLarge = errors.New("amount too large to render")
)

const maxRenderable = 1_000_000_000_000

// ToWords converts the integer part of a non-negative amount into a
// grammatically correct phrase for the given locale. The renderer is pure;
// identical inputs always yield identical output.
func ToWords(amount decimal.Decimal, locale Locale) (string, error) {
	if amount.IsNegative() {
		return "", ErrNegativeAmount
	}
	n := amount.IntPart()
	if n >= maxRenderable {
		return "", ErrAmountTooLarge
	}
	switch locale {
	case Arabic:
		return arabicWords(n), nil
	case English:
		return englishWords(n), nil
	default:
		return "", ErrUnsupportedLocale
	}
}

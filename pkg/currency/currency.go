// Package currency defines the fixed set of currencies the remittance
// network operates in and the metadata needed to format and name amounts.
package currency

import "fmt"

// Code is an ISO 4217-style currency code.
type Code string

const (
	// SYP is the Syrian pound, the network's primary currency.
	SYP Code = "SYP"
	// USD is the US dollar.
	USD Code = "USD"
)

// Meta holds display metadata for a supported currency.
type Meta struct {
	Code       Code
	Decimals   int
	Symbol     string
	Name       string
	ArabicName string
}

// supported is the fixed enumeration of currencies branches may hold.
// Adding a currency here requires a matching balance column on the branch.
var supported = map[Code]Meta{
	SYP: {Code: SYP, Decimals: 2, Symbol: "ل.س", Name: "Syrian Pound", ArabicName: "ليرة سورية"},
	USD: {Code: USD, Decimals: 2, Symbol: "$", Name: "US Dollar", ArabicName: "دولار أمريكي"},
}

// IsSupported reports whether code is one of the network's currencies.
func IsSupported(code Code) bool {
	_, ok := supported[code]
	return ok
}

// Get returns the metadata for a supported currency code.
func Get(code Code) (Meta, error) {
	meta, ok := supported[code]
	if !ok {
		return Meta{}, fmt.Errorf("unsupported currency: %q", code)
	}
	return meta, nil
}

// List returns all supported currency codes in a stable order.
func List() []Code {
	return []Code{SYP, USD}
}

func (c Code) String() string { return string(c) }

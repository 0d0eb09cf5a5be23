package tax_test

import (
	"testing"

	"github.com/qasioun/remit/pkg/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		benefited  string
		rate       string
		wantTax    string
		wantProfit string
	}{
		{"standard ten percent", "100000", "0.10", "10000", "90000"},
		{"zero rate", "5000", "0", "0", "5000"},
		{"full rate", "5000", "1", "5000", "0"},
		{"zero benefited", "0", "0.5", "0", "0"},
		{"fractional result rounds half to even down", "1234.565", "0.01", "12.35", "1222.215"},
		{"usd cents", "500.50", "0.07", "35.04", "465.46"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxAmount, profit, err := tax.Compute(d(tt.benefited), d(tt.rate))
			require.NoError(t, err)
			assert.True(t, taxAmount.Equal(d(tt.wantTax)),
				"tax: got %s, want %s", taxAmount, tt.wantTax)
			assert.True(t, profit.Equal(d(tt.wantProfit)),
				"profit: got %s, want %s", profit, tt.wantProfit)
		})
	}
}

func TestCompute_NoRoundingLeak(t *testing.T) {
	// For any valid pair, tax + profit must reconstruct the benefited
	// amount exactly.
	benefits := []string{"0", "1", "99.99", "100000", "123456.78", "0.01", "7777.77"}
	rates := []string{"0", "0.01", "0.05", "0.10", "0.125", "0.333", "0.5", "1"}

	for _, b := range benefits {
		for _, r := range rates {
			taxAmount, profit, err := tax.Compute(d(b), d(r))
			require.NoError(t, err)
			assert.True(t, taxAmount.Add(profit).Equal(d(b)),
				"benefited=%s rate=%s: %s + %s != %s", b, r, taxAmount, profit, b)
			assert.False(t, taxAmount.IsNegative())
			assert.False(t, profit.IsNegative())
		}
	}
}

func TestCompute_InvalidArguments(t *testing.T) {
	tests := []struct {
		name      string
		benefited string
		rate      string
	}{
		{"negative benefited", "-1", "0.10"},
		{"negative rate", "100", "-0.10"},
		{"rate above one", "100", "1.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tax.Compute(d(tt.benefited), d(tt.rate))
			assert.ErrorIs(t, err, tax.ErrInvalidArgument)
		})
	}
}

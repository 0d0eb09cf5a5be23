package money_test

import (
	"testing"

	"github.com/qasioun/remit/pkg/currency"
	"github.com/qasioun/remit/pkg/domain/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RoundsHalfToEven(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"no rounding needed", "100.25", "100.25"},
		{"half rounds to even down", "10.005", "10"},
		{"half rounds to even up", "10.015", "10.02"},
		{"ordinary round up", "10.016", "10.02"},
		{"ordinary round down", "10.014", "10.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)

			m, err := money.New(d, currency.SYP)
			require.NoError(t, err)
			assert.True(t, m.Amount().Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", m.Amount(), tt.want)
		})
	}
}

func TestNew_UnsupportedCurrency(t *testing.T) {
	_, err := money.New(decimal.NewFromInt(10), "EUR")
	assert.ErrorIs(t, err, money.ErrUnsupportedCurrency)
}

func TestNewFromString(t *testing.T) {
	m, err := money.NewFromString("2500.50", currency.USD)
	require.NoError(t, err)
	assert.Equal(t, currency.USD, m.Currency())
	assert.Equal(t, "2500.50 USD", m.String())

	_, err = money.NewFromString("not a number", currency.USD)
	assert.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	a, err := money.NewFromString("100.10", currency.SYP)
	require.NoError(t, err)
	b, err := money.NewFromString("0.20", currency.SYP)
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.RequireFromString("100.30")))

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.RequireFromString("99.90")))

	less, err := b.LessThan(a)
	require.NoError(t, err)
	assert.True(t, less)
}

func TestArithmetic_CurrencyMismatch(t *testing.T) {
	syp, err := money.NewFromString("100", currency.SYP)
	require.NoError(t, err)
	usd, err := money.NewFromString("100", currency.USD)
	require.NoError(t, err)

	_, err = syp.Add(usd)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	_, err = syp.Subtract(usd)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	_, err = syp.LessThan(usd)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
}

func TestPredicates(t *testing.T) {
	zero := money.Zero(currency.SYP)
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsPositive())
	assert.False(t, zero.IsNegative())

	pos, err := money.NewFromString("1", currency.SYP)
	require.NoError(t, err)
	assert.True(t, pos.IsPositive())

	neg, err := money.NewFromString("-1", currency.SYP)
	require.NoError(t, err)
	assert.True(t, neg.IsNegative())

	same, err := money.NewFromString("1.00", currency.SYP)
	require.NoError(t, err)
	assert.True(t, pos.Equals(same))
	assert.False(t, pos.Equals(zero))
}

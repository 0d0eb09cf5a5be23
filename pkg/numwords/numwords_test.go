package numwords_test

import (
	"testing"

	"github.com/qasioun/remit/pkg/numwords"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(t *testing.T, amount int64, locale numwords.Locale) string {
	t.Helper()
	s, err := numwords.ToWords(decimal.NewFromInt(amount), locale)
	require.NoError(t, err)
	return s
}

func TestToWords_Arabic(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "صفر"},
		{1, "واحد"},
		{2, "اثنان"},
		{11, "أحد عشر"},
		{20, "عشرون"},
		{25, "خمسة وعشرون"},
		{100, "مائة"},
		{101, "مائة وواحد"},
		{200, "مائتان"},
		{345, "ثلاثمائة وخمسة وأربعون"},
		{1000, "ألف"},
		{2000, "ألفان"},
		{3000, "ثلاثة آلاف"},
		{5000, "خمسة آلاف"},
		{10000, "عشرة آلاف"},
		{11000, "أحد عشر ألفاً"},
		{25000, "خمسة وعشرون ألفاً"},
		{100000, "مائة ألف"},
		{100500, "مائة ألف وخمسمائة"},
		{1000000, "مليون"},
		{2000000, "مليونان"},
		{5000000, "خمسة ملايين"},
		{1500000, "مليون وخمسمائة ألف"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, words(t, tt.amount, numwords.Arabic),
			"amount %d", tt.amount)
	}
}

func TestToWords_ThousandAgreement(t *testing.T) {
	// The grouping word for "thousand" must take a distinct form for one,
	// two, three-to-ten, and eleven-plus thousands.
	one := words(t, 1000, numwords.Arabic)
	two := words(t, 2000, numwords.Arabic)
	five := words(t, 5000, numwords.Arabic)
	twelve := words(t, 12000, numwords.Arabic)

	forms := map[string]bool{one: true, two: true, five: true, twelve: true}
	assert.Len(t, forms, 4, "expected four distinct renderings, got %v", forms)
	assert.Contains(t, five, "آلاف")
	assert.Contains(t, twelve, "ألفاً")
}

func TestToWords_English(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "zero"},
		{7, "seven"},
		{13, "thirteen"},
		{42, "forty-two"},
		{100, "one hundred"},
		{118, "one hundred eighteen"},
		{1000, "one thousand"},
		{2000, "two thousand"},
		{5000, "five thousand"},
		{90210, "ninety thousand two hundred ten"},
		{1000000, "one million"},
		{123456789, "one hundred twenty-three million four hundred fifty-six thousand seven hundred eighty-nine"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, words(t, tt.amount, numwords.English),
			"amount %d", tt.amount)
	}
}

func TestToWords_IgnoresFraction(t *testing.T) {
	s, err := numwords.ToWords(decimal.RequireFromString("1000.75"), numwords.English)
	require.NoError(t, err)
	assert.Equal(t, "one thousand", s)
}

func TestToWords_Errors(t *testing.T) {
	_, err := numwords.ToWords(decimal.NewFromInt(-1), numwords.Arabic)
	assert.ErrorIs(t, err, numwords.ErrNegativeAmount)

	_, err = numwords.ToWords(decimal.NewFromInt(10), numwords.Locale("fr"))
	assert.ErrorIs(t, err, numwords.ErrUnsupportedLocale)

	_, err = numwords.ToWords(decimal.New(1, 12), numwords.English)
	assert.ErrorIs(t, err, numwords.ErrAmountTooLarge)
}

package numwords

import "strings"

var arOnes = []string{
	"صفر", "واحد", "اثنان", "ثلاثة", "أربعة", "خمسة", "ستة", "سبعة", "ثمانية", "تسعة",
	"عشرة", "أحد عشر", "اثنا عشر", "ثلاثة عشر", "أربعة عشر", "خمسة عشر",
	"ستة عشر", "سبعة عشر", "ثمانية عشر", "تسعة عشر",
}

var arTens = []string{
	"", "", "عشرون", "ثلاثون", "أربعون", "خمسون", "ستون", "سبعون", "ثمانون", "تسعون",
}

var arHundreds = []string{
	"", "مائة", "مائتان", "ثلاثمائة", "أربعمائة", "خمسمائة",
	"ستمائة", "سبعمائة", "ثمانمائة", "تسعمائة",
}

// arScale holds the four grammatical forms of a grouping word: the singular
// (one, or after exact hundreds), the dual (exactly two), the plural used
// after three to ten, and the accusative singular used after eleven to
// ninety-nine.
type arScale struct {
	singular   string
	dual       string
	plural     string
	accusative string
}

var arThousand = arScale{"ألف", "ألفان", "آلاف", "ألفاً"}
var arMillion = arScale{"مليون", "مليونان", "ملايين", "مليوناً"}
var arBillion = arScale{"مليار", "ملياران", "مليارات", "ملياراً"}

// arBelowThousand renders 1..999. The unit comes before the ten, joined
// with the conjunction ("خمسة وعشرون").
func arBelowThousand(n int64) string {
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, arHundreds[h])
	}
	r := n % 100
	switch {
	case r == 0:
	case r < 20:
		parts = append(parts, arOnes[r])
	default:
		unit := r % 10
		ten := arTens[r/10]
		if unit == 0 {
			parts = append(parts, ten)
		} else {
			parts = append(parts, arOnes[unit]+" و"+ten)
		}
	}
	return strings.Join(parts, " و")
}

// arGroup renders a grouping count with the correct agreement for the
// grouping word itself: "ألف" (1000), "ألفان" (2000), "ثلاثة آلاف" (3000),
// "خمسة وعشرون ألفاً" (25000), "مائة ألف" (100000).
func arGroup(count int64, scale arScale) string {
	switch {
	case count == 1:
		return scale.singular
	case count == 2:
		return scale.dual
	}
	words := arBelowThousand(count)
	m := count % 100
	switch {
	case m >= 3 && m <= 10:
		return words + " " + scale.plural
	case m >= 11:
		return words + " " + scale.accusative
	default:
		// Exact hundreds, or remainders of one and two, take the singular.
		return words + " " + scale.singular
	}
}

func arabicWords(n int64) string {
	if n == 0 {
		return arOnes[0]
	}
	var parts []string
	if b := n / 1_000_000_000; b > 0 {
		parts = append(parts, arGroup(b, arBillion))
	}
	if m := n / 1_000_000 % 1000; m > 0 {
		parts = append(parts, arGroup(m, arMillion))
	}
	if t := n / 1000 % 1000; t > 0 {
		parts = append(parts, arGroup(t, arThousand))
	}
	if r := n % 1000; r > 0 {
		parts = append(parts, arBelowThousand(r))
	}
	return strings.Join(parts, " و")
}

package numwords

import "strings"

var enOnes = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var enTens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

func enBelowThousand(n int64) string {
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, enOnes[h]+" hundred")
	}
	r := n % 100
	switch {
	case r == 0:
	case r < 20:
		parts = append(parts, enOnes[r])
	default:
		word := enTens[r/10]
		if unit := r % 10; unit > 0 {
			word += "-" + enOnes[unit]
		}
		parts = append(parts, word)
	}
	return strings.Join(parts, " ")
}

func englishWords(n int64) string {
	if n == 0 {
		return enOnes[0]
	}
	var parts []string
	if b := n / 1_000_000_000; b > 0 {
		parts = append(parts, enBelowThousand(b)+" billion")
	}
	if m := n / 1_000_000 % 1000; m > 0 {
		parts = append(parts, enBelowThousand(m)+" million")
	}
	if t := n / 1000 % 1000; t > 0 {
		parts = append(parts, enBelowThousand(t)+" thousand")
	}
	if r := n % 1000; r > 0 {
		parts = append(parts, enBelowThousand(r))
	}
	return strings.Join(parts, " ")
}

package report

import (
	"math"
	"unicode"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var accentFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'ê': 'e', 'è': 'e',
	'í': 'i', 'ì': 'i',
	'ó': 'o', 'ô': 'o', 'õ': 'o', 'ò': 'o',
	'ú': 'u', 'ü': 'u', 'ù': 'u',
	'ç': 'c', 'ñ': 'n',
}

// foldAccent maps Portuguese accented letters to ASCII, keeping case
func foldAccent(r rune) rune {
	if folded, ok := accentFold[r]; ok {
		return folded
	}
	if folded, ok := accentFold[unicode.ToLower(r)]; ok {
		return unicode.ToUpper(folded)
	}
	return r
}

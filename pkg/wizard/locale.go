package wizard

import (
	"fmt"
	"strings"
)

// Locale bundles the language-dependent pieces of the prompt flow:
// confirmation tokens and the ordinal-suffix rule used when asking
// for the Nth item of a list. The suffix rule is a function rather
// than a format string because languages disagree on more than the
// suffix itself (French "1er" vs "2ème", English "1st" vs "2nd").
type Locale struct {
	YesTokens []string
	NoTokens  []string
	Ordinal   func(n int) string
}

// DefaultLocale returns the English locale.
func DefaultLocale() Locale {
	return Locale{
		YesTokens: []string{"yes", "y"},
		NoTokens:  []string{"no", "n"},
		Ordinal:   EnglishOrdinal,
	}
}

// EnglishOrdinal spells n as an English ordinal: 1st, 2nd, 3rd, 4th,
// with the teens (11th, 12th, 13th) as the usual exception.
func EnglishOrdinal(n int) string {
	if v := n % 100; v >= 11 && v <= 13 {
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}

func matchToken(answer string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.EqualFold(answer, tok) {
			return true
		}
	}
	return false
}

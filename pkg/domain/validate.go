package domain

import (
	"math"
	"strconv"
	"strings"
)

// Input validators for the wizard. All of them are pure predicates
// over the raw, already-trimmed line the operator typed.

// IsNonEmptyText reports whether s is usable as a name-like answer:
// non-blank and not parseable as a plain number. Rejecting numerics
// catches answers that landed on the wrong question.
func IsNonEmptyText(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return false
	}
	return true
}

// IsPositiveInt reports whether s parses to an integer strictly
// greater than zero. Fractional input ("5.5") is rejected even though
// it parses as a number.
func IsPositiveInt(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil && n > 0
}

// IsPositiveVolume reports whether s parses to a finite number
// strictly greater than zero. Both "3" and "3.5" are accepted.
func IsPositiveVolume(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) && f > 0
}

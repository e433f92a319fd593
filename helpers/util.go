package helpers

import (
	"errors"
	"strconv"
	"strings"
)

func GetSplitPart(target string, separate string, index int) (string, error) {
	parts := strings.Split(target, separate)
	if index >= len(parts) {
		return "", errors.New("index out of range")
	}
	return parts[index], nil
}

// FormatGrouped renders a non-negative amount with comma thousands
// grouping. Fractions are kept to two places when present.
func FormatGrouped(amount float64) string {
	whole := int64(amount)
	frac := amount - float64(whole)

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if frac > 1e-9 {
		cents := strconv.FormatFloat(frac, 'f', 2, 64)
		// strip the leading "0" of "0.xx"
		b.WriteString(cents[1:])
	}

	return b.String()
}

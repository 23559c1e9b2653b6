package coerce

import "strings"

// ExtractDigits returns the decimal digits of s concatenated in order,
// with every other character discarded. "a1b2c3" yields "123".
func ExtractDigits(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out.WriteRune(r)
		}
	}
	return out.String()
}

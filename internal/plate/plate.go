package plate

import (
	"regexp"
	"strings"
)

// Indian registration numbers: state code, district code, series, number.
// e.g. PB65AM0008, MH02FB2727.
var pattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{1,2}[A-Z]{1,2}[0-9]{4}$`)

// Normalize trims surrounding whitespace and uppercases the raw input.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Valid reports whether the input matches the registration number shape.
// Matching is case-insensitive; no other cleanup is applied.
func Valid(raw string) bool {
	return pattern.MatchString(strings.ToUpper(raw))
}

package modifiers

import (
	"net/netip"
	"strings"

	"github.com/asaskevich/govalidator"
	"golang.org/x/text/cases"
)

// TrimSpace removes leading and trailing whitespace.
func TrimSpace(s string) string {
	return strings.TrimSpace(s)
}

// Lower maps s to lower case.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Upper maps s to upper case.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// Casefold maps s to its Unicode case-folded form, the canonical form
// for caseless matching. Unlike [Lower] it handles letters whose folded
// form is not their lower case (e.g. ß → ss).
//
// A fold caser is stateful, so one is created per call; Casefold is
// safe for use from parallel transform workers.
func Casefold(s string) string {
	return cases.Fold().String(s)
}

// NormalizeEmail canonicalizes an email address (lower-cases the
// domain, strips gmail-style dots and sub-addressing). Input that is
// not a valid email passes through unchanged.
func NormalizeEmail(s string) string {
	normalized, err := govalidator.NormalizeEmail(s)
	if err != nil {
		return s
	}
	return normalized
}

// ToIPAddr parses a string value into a [netip.Addr]. Values that are
// not strings, or strings that are not IP addresses, pass through
// unchanged, so the modifier can sit in a chain over mixed values.
func ToIPAddr(v any) any {
	s, ok := v.(string)
	if !ok || !govalidator.IsIP(s) {
		return v
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return v
	}
	return addr
}

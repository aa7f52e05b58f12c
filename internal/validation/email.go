package validation

import "regexp"

// emailPattern is intentionally RFC-lite: local part of letters, digits and
// +_.-, an @, a domain of letters, digits and .-, and a 2–6 letter TLD.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`)

// IsValidEmail reports whether s fully matches the email pattern. No
// normalization is performed; callers trim whitespace themselves.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

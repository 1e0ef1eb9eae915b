package domain

import "regexp"

// usernamePattern matches GitHub logins: alphanumerics and hyphens, not
// starting with a hyphen, at most 39 characters
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{0,38}$`)

// ValidUsername reports whether s can be a GitHub login
func ValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

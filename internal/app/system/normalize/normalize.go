// internal/app/system/normalize/normalize.go

// Package normalize provides canonical forms for user-supplied string
// fields before they are stored or used in query filters. Email and role
// comparisons throughout the service rely on these forms.
package normalize

import "strings"

// Email lower-cases and trims an email address. Assignment and user
// filters match on this form, never on the raw input.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Role lower-cases and trims a role value so authorization checks are
// case-insensitive.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

package finance

import "strings"

// User is the owner of transactions and holdings.
type User struct {
	ID           uint
	Email        string // normalized, see NormalizeEmail
	Name         string
	PasswordHash string // bcrypt hash, never the cleartext password
}

// NormalizeEmail returns the canonical form of an email used for storage and
// lookups: emails compare case-insensitively and ignore surrounding spaces.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

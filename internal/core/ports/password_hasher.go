package ports

// PasswordHasher hashes and verifies passwords and reports strength
// violations before a password is accepted.
type PasswordHasher interface {
	Hash(plain string) (string, error)

	// Compare reports whether plain matches hash.
	Compare(plain, hash string) bool

	// ValidateStrength returns one message per violated rule, or nil.
	ValidateStrength(plain string) []string
}

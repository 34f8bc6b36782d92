package service

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	// Hash returns a salted, self-describing hash of the password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A hash that cannot be parsed
	// is an error (domainerrors.ErrMalformedStoredHash), never a plain mismatch.
	Check(password, hash string) (bool, error)

	// ValidatePasswordStrength enforces the configured password policy.
	ValidatePasswordStrength(password string) error
}

package ports

// PasswordHasher is the credential store: it produces salted hashes and
// verifies plaintext candidates against them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns nil when password matches hash.
	Verify(hash, password string) error
}

// TokenIssuer signs and verifies identity tokens for token-based admin auth.
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
	// Verify checks the signature and expiry and returns the email claim.
	Verify(token string) (string, error)
}

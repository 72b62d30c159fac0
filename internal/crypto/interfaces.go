package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plain-text passwords into one-way hashes and checks
// candidates against them.
type PasswordHasher interface {
	// Hash returns the hash of password with a random salt, so two calls
	// with the same input give different results.
	Hash(password string) (string, error)

	// Compare reports nil when password matches hash and
	// [ErrPasswordMismatch] when it does not.
	Compare(hash, password string) error
}

// Package service provides the technical services used by the client use cases:
// field format validation and password hashing.
package service

// PasswordService hashes and verifies client passwords.
type PasswordService interface {
	// Hash returns the Argon2id hash of a plain password.
	Hash(plainPassword string) (string, error)

	// Compare reports whether plainPassword matches hashedPassword.
	Compare(plainPassword, hashedPassword string) bool
}

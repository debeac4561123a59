// Package service defines interfaces for core, stateless domain logic.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying algorithm (bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Two calls on
	// the same input produce different outputs; the salt is embedded in the
	// result.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash. A mismatch is a false
	// return, never an error.
	Check(password, hash string) bool
}

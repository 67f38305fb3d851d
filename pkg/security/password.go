package security

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a password using bcrypt. The salt is randomized per
// call, so hashing the same password twice yields different digests.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a stored digest. Malformed or
// empty digests never verify; bcrypt accepts digests from any of its
// revisions ($2a$, $2b$, $2y$), so hashes written by older deployments
// remain verifiable.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

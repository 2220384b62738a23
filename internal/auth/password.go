package auth

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor for new password hashes.
const hashCost = 10

// HashPassword returns the bcrypt hash of plaintext.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt hash.
// A malformed hash verifies false rather than erroring: from the caller's
// point of view a credential that cannot be checked is a credential that
// does not match.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

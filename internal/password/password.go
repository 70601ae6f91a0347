package password

import "golang.org/x/crypto/bcrypt"

// MinLength is the shortest plaintext password accepted at registration.
const MinLength = 6

// Hash returns the bcrypt digest of the password.
func Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether password matches the digest. Malformed digests never match.
func Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// Hasher adapts the package functions to the service-side interface.
type Hasher struct{}

func (Hasher) Hash(password string) (string, error) { return Hash(password) }

func (Hasher) Verify(password, digest string) bool { return Verify(password, digest) }

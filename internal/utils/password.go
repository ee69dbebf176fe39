package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash for an account password.  The cost
// comes from configuration so deployments can tune hashing time; values
// below bcrypt's minimum fall back to the library default rather than
// producing a weak hash.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether a plain password matches a stored bcrypt
// hash.  The comparison is constant time inside bcrypt.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

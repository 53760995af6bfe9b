package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way digest of the password. A fresh
// random salt is embedded in the digest on every call, so two hashes of the
// same password never match byte-for-byte.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the password matches the stored digest.
// A malformed digest is treated the same as a mismatch; callers get no
// signal about which it was.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

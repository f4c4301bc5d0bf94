package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashRefreshToken produces the SHA256 digest stored in place of the raw
// refresh token. The raw token only ever lives in the client cookie.
func HashRefreshToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}

// CompareRefreshTokenHash checks a raw refresh token against its stored digest.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	return HashRefreshToken(token) == storedHash
}

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenHeader is the request header carrying the admin session token,
// preserved from the original web client.
const TokenHeader = "x-auth-token"

const tokenBytes = 32

// NewToken mints an opaque bearer token: 32 random bytes, hex encoded.
func NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

package oauth2

import (
	"crypto/rand"
	"encoding/hex"

	xoauth2 "golang.org/x/oauth2"
)

// PKCE is a code verifier and its S256 challenge.
type PKCE struct {
	Verifier        string
	Challenge       string
	ChallengeMethod string
}

// GenerateRandomString generates a cryptographically secure random string
func GenerateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateState returns an opaque CSRF token.
func GenerateState() (string, error) {
	return GenerateRandomString(32)
}

// GenerateNonce returns an opaque replay-protection token.
func GenerateNonce() (string, error) {
	return GenerateRandomString(32)
}

// GeneratePKCE returns a fresh verifier (RFC 7636, 43 characters) with its S256 challenge.
func GeneratePKCE() PKCE {
	verifier := xoauth2.GenerateVerifier()
	return PKCE{
		Verifier:        verifier,
		Challenge:       xoauth2.S256ChallengeFromVerifier(verifier),
		ChallengeMethod: "S256",
	}
}

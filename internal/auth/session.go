package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "zp_session"

// SignSession builds a tamper-evident session token for an email.
func SignSession(secret, email string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(email))
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.RawURLEncoding.EncodeToString([]byte(email)) + "." + sig
}

// ParseSession verifies a session token and returns the email it was
// issued for.
func ParseSession(secret, token string) (string, bool) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return "", false
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", false
	}
	email := string(raw)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(email))
	want := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(want), []byte(parts[1])) {
		return "", false
	}
	return email, true
}

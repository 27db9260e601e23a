//
// Helpers for issuing / clearing the jwt session cookie plus the
// security-header block every token-bearing response should carry.

package utils

import (
	"fmt"
	"net/http"
	"time"
)

// JWTCookieName is the cookie that carries the access token for
// browser clients. API clients use the Authorization header instead.
const JWTCookieName = "jwt"

// SetJWTCookie writes the jwt cookie with a lifetime matching the
// token's own expiry, so the browser drops it when the token dies.
// SameSite=None is required because the SPA frontend is served from a
// different origin than the API.
func SetJWTCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	if token == "" {
		return
	}

	maxAge := int(ttl.Seconds())
	expires := time.Now().Add(ttl).UTC().Format(http.TimeFormat)

	w.Header().Add("Set-Cookie",
		fmt.Sprintf("%s=%s; Path=/; Max-Age=%d; Expires=%s; SameSite=None; Secure; HttpOnly",
			JWTCookieName, token, maxAge, expires))

	addSecurityHeaders(w)
}

// ClearJWTCookie deletes the cookie (logout). Issued unconditionally,
// even when the request carried no cookie at all.
func ClearJWTCookie(w http.ResponseWriter) {
	expired := time.Now().Add(-1 * time.Hour).UTC().Format(http.TimeFormat)

	w.Header().Add("Set-Cookie",
		fmt.Sprintf("%s=; Path=/; Expires=%s; Max-Age=0; SameSite=None; Secure; HttpOnly",
			JWTCookieName, expired))

	addSecurityHeaders(w)
}

func addSecurityHeaders(w http.ResponseWriter) {
	w.Header().Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/Norumai01/HonkaiBackendV2/internal/services"
	"github.com/Norumai01/HonkaiBackendV2/internal/utils"
)

// AuthMiddleware authenticates a request carrying a bearer token in the
// Authorization header or the jwt cookie. Requests with no token pass
// through unauthenticated; whether anonymous access is allowed is the
// route's decision (see RequireAuth).
//
// The checks run strictly in order: structural check, blacklist lookup,
// subject extraction, then user resolution + signature/expiry
// verification. A failure at any step terminates the request — partial
// validation is never treated as success, and a blacklist outage
// rejects rather than silently allowing (fail closed).
func AuthMiddleware(
	jwtService services.JWTService,
	blacklistService services.BlacklistService,
	userService services.UserService,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// A principal already attached means an earlier pass did the
			// work; never authenticate the same request twice.
			if _, ok := PrincipalFromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := ExtractToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r) // unauthenticated – allowed
				return
			}

			// Valid JWT shape is "{header}.{payload}.{signature}".
			// Malformed input is rejected before any trust decision.
			if len(strings.Split(tokenStr, ".")) != 3 {
				utils.RespondErrorWithCode(
					w, http.StatusBadRequest, utils.ErrCodeMalformedToken, "Invalid JWT format", nil,
				)
				return
			}

			revoked, err := blacklistService.IsRevoked(r.Context(), tokenStr)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, err,
				)
				return
			}
			if revoked {
				// Same public outcome as an expired or badly signed
				// token; only the server log records the difference.
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, utils.ErrTokenRevoked,
				)
				return
			}

			subject, err := jwtService.ExtractSubject(tokenStr)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusBadRequest, utils.ErrCodeMalformedToken, "Invalid JWT token", nil, err,
				)
				return
			}

			user, err := userService.ResolveLoginInput(r.Context(), subject)
			if err != nil || user == nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, err,
				)
				return
			}

			if !jwtService.ValidateToken(tokenStr, user.Email) {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil,
				)
				return
			}

			ctx := WithPrincipal(r.Context(), NewPrincipal(user))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth gates routes that do not permit anonymous access. It runs
// after AuthMiddleware and only checks whether a principal was attached.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PrincipalFromContext(r.Context()); !ok {
			utils.RespondErrorWithCode(
				w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required", nil,
			)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ExtractToken reads the candidate token from the Authorization header,
// falling back to the jwt cookie. Both transports carry the same token
// format; a deployment may use either or both.
func ExtractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}

	if c, err := r.Cookie(utils.JWTCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	return ""
}

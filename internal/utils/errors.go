package utils

import "errors"

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons. Controllers and middleware collapse
// these into generic HTTP outcomes so the client cannot tell which
// specific check failed.
var (
	// Token errors
	ErrMalformedToken       = errors.New("malformed_token")
	ErrTokenRevoked         = errors.New("token_revoked")
	ErrBlacklistUnavailable = errors.New("blacklist_unavailable")

	// Identity errors
	ErrUserNotFound       = errors.New("user_not_found")
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// Registration conflicts
	ErrUsernameExists = errors.New("username_exists")
	ErrEmailExists    = errors.New("email_exists")
)

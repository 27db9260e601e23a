package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/Norumai01/HonkaiBackendV2/internal/models"
)

type contextKey string

const contextKeyPrincipal = contextKey("principal")

// Principal is the authenticated identity attached to a request. It
// lives only in the request context and dies with the request.
type Principal struct {
	UserID  uuid.UUID
	Subject string
	Role    models.RoleType
}

// NewPrincipal maps a resolved user onto its authorization view. The
// subject is the user's email, matching the token's sub claim.
func NewPrincipal(user *models.User) Principal {
	return Principal{
		UserID:  user.ID,
		Subject: user.Email,
		Role:    user.Role,
	}
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKeyPrincipal).(Principal)
	return p, ok
}

// WithPrincipal attaches the principal to the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKeyPrincipal, p)
}

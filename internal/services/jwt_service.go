package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Norumai01/HonkaiBackendV2/internal/config"
	"github.com/Norumai01/HonkaiBackendV2/internal/models"
	"github.com/Norumai01/HonkaiBackendV2/internal/utils"
)

// ---------------------------------------------------------------------
// JWTService interface
// ---------------------------------------------------------------------

// JWTService owns the signing key and the claim schema. The key is
// process-wide and immutable after startup; losing it on restart
// invalidates every outstanding token, which is an accepted limitation
// of the single-key design.
type JWTService interface {
	// GenerateToken issues a signed token with the user's email as the
	// subject, iat = now and exp = now + the fixed lifetime.
	GenerateToken(user *models.User) (string, error)

	// ExtractSubject decodes the sub claim WITHOUT verifying signature
	// or expiry. Callers either verified independently or only need a
	// best-effort identity (logout audit). Returns ErrMalformedToken
	// when the token cannot be decoded at all.
	ExtractSubject(tokenStr string) (string, error)

	// ValidateToken verifies signature and expiry and confirms the
	// subject matches. It is a security predicate: false on any
	// mismatch, never an error.
	ValidateToken(tokenStr string, expectedSubject string) bool

	// TokenTTL reports the fixed token lifetime, shared with the
	// blacklist so revocation entries always outlive the token.
	TokenTTL() time.Duration
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type jwtService struct {
	secretKey   []byte
	tokenExpiry time.Duration
}

func NewJWTService(cfg *config.Config) JWTService {
	return &jwtService{
		secretKey:   cfg.JWTSecretKey,
		tokenExpiry: cfg.TokenExpiry,
	}
}

func (j *jwtService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.Email,
		"iat": now.Unix(),
		"exp": now.Add(j.tokenExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

func (j *jwtService) ExtractSubject(tokenStr string) (string, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return "", utils.ErrMalformedToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", utils.ErrMalformedToken
	}
	return sub, nil
}

func (j *jwtService) ValidateToken(tokenStr string, expectedSubject string) bool {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return false
	}

	return sub == expectedSubject
}

func (j *jwtService) TokenTTL() time.Duration {
	return j.tokenExpiry
}

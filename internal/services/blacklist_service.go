package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Norumai01/HonkaiBackendV2/internal/utils"
)

const blacklistKeyPrefix = "jwt-blacklist:"

// ---------------------------------------------------------------------
// BlacklistService interface
// ---------------------------------------------------------------------

// BlacklistService records revoked tokens in Redis. Keys are a one-way
// hash of the raw token, so the store never holds a bearer-equivalent
// secret at rest, and every entry self-expires after the fixed token
// lifetime — always at least the revoked token's remaining validity.
type BlacklistService interface {
	// Revoke blacklists the raw token. The subject is stored as the
	// value for audit purposes.
	Revoke(ctx context.Context, rawToken string, subject string) error

	// IsRevoked reports whether the token has been blacklisted. When
	// Redis is unreachable it returns ErrBlacklistUnavailable; callers
	// must fail closed and reject the request.
	IsRevoked(ctx context.Context, rawToken string) (bool, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type blacklistService struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewBlacklistService(rdb *redis.Client, ttl time.Duration) BlacklistService {
	return &blacklistService{
		redis: rdb,
		ttl:   ttl,
	}
}

func (b *blacklistService) Revoke(ctx context.Context, rawToken string, subject string) error {
	key := blacklistKey(rawToken)

	if err := b.redis.Set(ctx, key, subject, b.ttl).Err(); err != nil {
		utils.Logger.WithError(err).Error("Failed to blacklist token")
		return utils.ErrBlacklistUnavailable
	}

	utils.Logger.Infof("Blacklisted token for the user: %s.", subject)
	return nil
}

func (b *blacklistService) IsRevoked(ctx context.Context, rawToken string) (bool, error) {
	key := blacklistKey(rawToken)

	exists, err := b.redis.Exists(ctx, key).Result()
	if err != nil {
		utils.Logger.WithError(err).Error("Blacklist lookup failed; failing closed")
		return false, utils.ErrBlacklistUnavailable
	}

	return exists > 0, nil
}

func blacklistKey(rawToken string) string {
	digest := sha256.Sum256([]byte(rawToken))
	return blacklistKeyPrefix + hex.EncodeToString(digest[:])
}

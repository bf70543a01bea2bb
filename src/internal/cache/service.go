package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	sessionKeyPrefix = "session:"
	revokedKeyPrefix = "revoked:"
)

// DefaultSessionExpiration applies when no session cache lifetime is configured.
const DefaultSessionExpiration = 15 * time.Minute

type Service interface {
	GetSession(ctx context.Context, token string) (*models.Session, error)
	CacheSession(ctx context.Context, session *models.Session) error
	RevokeSession(ctx context.Context, token string) error
	GetDashboardStats(ctx context.Context, userID string) (*models.DashboardStats, error)
	SaveDashboardStats(ctx context.Context, userID string, stats *models.DashboardStats) error
}

type cacheService struct {
	client *redis.Client
	cfg    *config.CacheConfig
	now    func() time.Time
}

func NewCacheService(client *redis.Client, cfg *config.Configuration) Service {
	return &cacheService{
		client: client,
		cfg:    &cfg.Cache,
		now:    time.Now,
	}
}

// SessionKey never embeds the raw bearer token.
func SessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return sessionKeyPrefix + hex.EncodeToString(sum[:])
}

func RevokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedKeyPrefix + hex.EncodeToString(sum[:])
}

// RevocationTTL outlives any session entry written by a resolve that read
// the store before the revocation landed.
func RevocationTTL(max time.Duration) time.Duration {
	return 2 * max
}

// SessionTTL bounds a cache entry by both the session expiry and the
// configured maximum. A non-positive result means the entry must not be cached.
func SessionTTL(now, expiresAt time.Time, max time.Duration) time.Duration {
	ttl := expiresAt.Sub(now)
	if max > 0 && ttl > max {
		ttl = max
	}
	return ttl
}

// GetSession reports a miss for revoked tokens even when a session entry
// is still present.
func (c *cacheService) GetSession(ctx context.Context, token string) (*models.Session, error) {
	values, err := c.client.MGet(ctx, RevokedKey(token), SessionKey(token)).Result()
	if err != nil {
		logrus.WithError(err).Error("Failed to get session from cache")
		return nil, models.ErrRedisGet
	}

	if values[0] != nil {
		logrus.Debug("Session revoked, ignoring cache")
		return nil, nil
	}

	data, ok := values[1].(string)
	if !ok {
		logrus.Debug("Session not found in cache")
		return nil, nil // Not an error, just not found
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		logrus.WithError(err).Error("Failed to unmarshal session from cache")
		return nil, models.ErrRedisGet
	}

	return &session, nil
}

func (c *cacheService) CacheSession(ctx context.Context, session *models.Session) error {
	expiration := SessionTTL(c.now(), session.ExpiresAt, time.Duration(c.cfg.SessionExpirationMinutes)*time.Minute)
	if expiration <= 0 {
		logrus.WithField("user_id", session.UserID).Warn("Session already expired, not caching")
		return nil
	}

	revoked, err := c.client.Exists(ctx, RevokedKey(session.SessionToken)).Result()
	if err != nil {
		logrus.WithError(err).WithField("user_id", session.UserID).Error("Failed to check session revocation")
		return models.ErrRedisGet
	}
	if revoked > 0 {
		logrus.WithField("user_id", session.UserID).Debug("Session revoked, not caching")
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		logrus.WithError(err).WithField("user_id", session.UserID).Error("Failed to marshal session for cache")
		return models.ErrRedisSet
	}

	if err := c.client.Set(ctx, SessionKey(session.SessionToken), data, expiration).Err(); err != nil {
		logrus.WithError(err).WithField("user_id", session.UserID).Error("Failed to cache session")
		return models.ErrRedisSet
	}

	logrus.WithField("user_id", session.UserID).Debug("Session cached successfully")
	return nil
}

// RevokeSession writes the tombstone before dropping the entry, so a
// concurrent CacheSession cannot bring the session back.
func (c *cacheService) RevokeSession(ctx context.Context, token string) error {
	ttl := RevocationTTL(time.Duration(c.cfg.SessionExpirationMinutes) * time.Minute)
	if ttl <= 0 {
		ttl = RevocationTTL(DefaultSessionExpiration)
	}

	if err := c.client.Set(ctx, RevokedKey(token), 1, ttl).Err(); err != nil {
		logrus.WithError(err).Error("Failed to write session revocation")
		return models.ErrRedisSet
	}

	if err := c.client.Del(ctx, SessionKey(token)).Err(); err != nil {
		logrus.WithError(err).Error("Failed to invalidate cached session")
		return models.ErrRedisDelete
	}
	return nil
}

func (c *cacheService) dashboardKey(userID string) string {
	return c.cfg.DashboardStatKey + ":" + userID
}

func (c *cacheService) SaveDashboardStats(ctx context.Context, userID string, stats *models.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		logrus.WithError(err).Error("Failed to marshal dashboard stats for cache")
		return models.ErrRedisSet
	}

	expiration := time.Duration(c.cfg.DashboardExpirationMinutes) * time.Minute
	if err := c.client.Set(ctx, c.dashboardKey(userID), data, expiration).Err(); err != nil {
		logrus.WithError(err).Error("Failed to cache dashboard stats")
		return models.ErrRedisSet
	}
	return nil
}

func (c *cacheService) GetDashboardStats(ctx context.Context, userID string) (*models.DashboardStats, error) {
	data, err := c.client.Get(ctx, c.dashboardKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logrus.Debug("Dashboard stats not found in cache")
			return nil, nil // Not an error, just not found
		}
		logrus.WithError(err).Error("Failed to get dashboard stats from cache")
		return nil, models.ErrRedisGet
	}

	var stats models.DashboardStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		logrus.WithError(err).Error("Failed to unmarshal dashboard stats from cache")
		return nil, models.ErrRedisGet
	}

	return &stats, nil
}

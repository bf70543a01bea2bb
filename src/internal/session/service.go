package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bizpulse-api/src/clients"
	"bizpulse-api/src/internal/cache"
	"bizpulse-api/src/internal/metrics"
	"bizpulse-api/src/internal/models"
	"bizpulse-api/src/internal/user"

	"github.com/sirupsen/logrus"
)

// IdentityProvider trades an exchange id for user and session data.
type IdentityProvider interface {
	GetSessionData(ctx context.Context, exchangeID string) (*models.ProviderSessionData, error)
}

// Created is the outcome of a successful session exchange.
type Created struct {
	User     *user.User
	Provider *models.ProviderSessionData
	Session  *models.Session
}

// Service issues, resolves and revokes sessions. It owns the session policy;
// durable storage is delegated to the repositories.
type Service interface {
	CreateSession(ctx context.Context, exchangeID string) (*Created, error)
	ResolveSession(ctx context.Context, token string) (*user.User, error)
	DestroySession(ctx context.Context, token string)
	TTL() time.Duration
}

type Options struct {
	TTL time.Duration
	// RevocationWindow is how long a token whose cache revocation failed
	// bypasses the cache. It must cover the cache entry lifetime.
	RevocationWindow time.Duration
	Now              func() time.Time
}

type sessionService struct {
	identity  IdentityProvider
	users     user.Service
	sessions  Repository
	cache     cache.Service
	publisher clients.ActivityPublisher
	recorder  metrics.Recorder
	ttl       time.Duration
	now       func() time.Time

	revocationWindow time.Duration
	mu               sync.Mutex
	uncached         map[string]time.Time
}

func NewSessionService(
	identity IdentityProvider,
	users user.Service,
	sessions Repository,
	cacheService cache.Service,
	publisher clients.ActivityPublisher,
	recorder metrics.Recorder,
	opts Options,
) Service {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RevocationWindow <= 0 {
		opts.RevocationWindow = cache.RevocationTTL(cache.DefaultSessionExpiration)
	}

	return &sessionService{
		identity:  identity,
		users:     users,
		sessions:  sessions,
		cache:     cacheService,
		publisher: publisher,
		recorder:  recorder,
		ttl:       opts.TTL,
		now:       opts.Now,

		revocationWindow: opts.RevocationWindow,
		uncached:         make(map[string]time.Time),
	}
}

func (s *sessionService) TTL() time.Duration {
	return s.ttl
}

func (s *sessionService) CreateSession(ctx context.Context, exchangeID string) (*Created, error) {
	if exchangeID == "" {
		return nil, fmt.Errorf("%w: exchange id is required", models.ErrInvalidParams)
	}

	data, err := s.identity.GetSessionData(ctx, exchangeID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()

	u, err := s.users.FindOrCreate(ctx, data, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	sess := &models.Session{
		UserID:       data.ID,
		SessionToken: data.SessionToken,
		ExpiresAt:    now.Add(s.ttl),
		CreatedAt:    now,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	s.recorder.RecordSessionCreated()
	s.publish(data.ID, models.ActionSessionCreated)

	logrus.WithFields(logrus.Fields{
		"user_id":    data.ID,
		"expires_at": sess.ExpiresAt,
	}).Info("Session created")

	return &Created{User: u, Provider: data, Session: sess}, nil
}

func (s *sessionService) ResolveSession(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		s.recorder.RecordResolveFailure("missing_token")
		return nil, models.ErrUnauthenticated
	}

	now := s.now().UTC()

	userID, err := s.activeUserID(ctx, token, now)
	if err != nil {
		if errors.Is(err, models.ErrInvalidOrExpiredSession) {
			s.recorder.RecordResolveFailure("invalid_or_expired")
		}
		return nil, err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			logrus.WithField("user_id", userID).Warn("Session references a missing user")
			s.recorder.RecordResolveFailure("user_not_found")
		}
		return nil, err
	}

	return u, nil
}

// activeUserID consults the cache first and falls back to the store, which
// is the source of truth for both expiry and revocation.
func (s *sessionService) activeUserID(ctx context.Context, token string, now time.Time) (string, error) {
	useCache := !s.bypassesCache(token, now)

	if useCache {
		cached, err := s.cache.GetSession(ctx, token)
		if err != nil {
			logrus.WithError(err).Warn("Session cache lookup failed, using store")
		}
		if cached != nil && cached.IsActive(now) {
			return cached.UserID, nil
		}
	}

	sess, err := s.sessions.FindActiveByToken(ctx, token, now)
	if err != nil {
		return "", err
	}

	if useCache {
		if err := s.cache.CacheSession(ctx, sess); err != nil {
			logrus.WithError(err).Warn("Failed to cache session")
		}
	}

	return sess.UserID, nil
}

// bypassesCache reports whether token had a failed cache revocation within
// the revocation window.
func (s *sessionService) bypassesCache(token string, now time.Time) bool {
	key := cache.SessionKey(token)

	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.uncached[key]
	if !ok {
		return false
	}
	if !now.Before(until) {
		delete(s.uncached, key)
		return false
	}
	return true
}

func (s *sessionService) markUncached(token string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, until := range s.uncached {
		if !now.Before(until) {
			delete(s.uncached, key)
		}
	}
	s.uncached[cache.SessionKey(token)] = now.Add(s.revocationWindow)
}

// DestroySession never reports failure to the caller; unknown tokens and
// store errors are logged only.
func (s *sessionService) DestroySession(ctx context.Context, token string) {
	if token == "" {
		return
	}

	if err := s.cache.RevokeSession(ctx, token); err != nil {
		logrus.WithError(err).Warn("Failed to revoke cached session, bypassing cache for token")
		s.markUncached(token, s.now().UTC())
	}

	deleted, err := s.sessions.DeleteByToken(ctx, token)
	if err != nil {
		logrus.WithError(err).Error("Failed to delete session on logout")
		return
	}
	if deleted == nil {
		logrus.Debug("Logout for unknown session token")
		return
	}

	logrus.WithField("user_id", deleted.UserID).Info("Session destroyed")
	s.publish(deleted.UserID, models.ActionLogout)
}

func (s *sessionService) publish(userID, action string) {
	clients.PublishBestEffort(s.publisher, userID, models.ServiceAuth, action, nil)
}

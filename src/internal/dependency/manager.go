package dependency

import (
	"context"
	"time"

	"bizpulse-api/src/clients"
	"bizpulse-api/src/internal/auth"
	"bizpulse-api/src/internal/cache"
	"bizpulse-api/src/internal/community"
	"bizpulse-api/src/internal/compliance"
	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/dashboard"
	"bizpulse-api/src/internal/dna"
	"bizpulse-api/src/internal/edge"
	"bizpulse-api/src/internal/emotion"
	"bizpulse-api/src/internal/funding"
	"bizpulse-api/src/internal/llm"
	"bizpulse-api/src/internal/metrics"
	"bizpulse-api/src/internal/middleware"
	"bizpulse-api/src/internal/persona"
	"bizpulse-api/src/internal/session"
	"bizpulse-api/src/internal/team"
	"bizpulse-api/src/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Indexer is implemented by every repository that owns a collection.
type Indexer interface {
	EnsureIndexes(ctx context.Context) error
}

type Manager struct {
	Router   *gin.Engine
	Config   *config.Configuration
	Mongodb  *clients.MongoDB
	Redis    *clients.RedisClient
	RabbitMQ *clients.RabbitMQ
	Gatherer prometheus.Gatherer

	Metrics        metrics.Recorder
	CacheService   cache.Service
	Publisher      clients.ActivityPublisher
	LLMGateway     llm.Gateway
	UserService    user.Service
	SessionService session.Service
	AuthMiddleware *middleware.AuthMiddleware

	UserHandler       user.Handler
	AuthHandler       auth.Handler
	EmotionHandler    emotion.Handler
	TeamHandler       team.Handler
	PersonaHandler    persona.Handler
	FundingHandler    funding.Handler
	ComplianceHandler compliance.Handler
	DNAHandler        dna.Handler
	CommunityHandler  community.Handler
	DashboardHandler  dashboard.Handler
	EdgeHandler       edge.Handler

	indexers map[string]Indexer
}

// NewDependencyManager wires every service. redisClient and rabbitMQ may be
// nil, in which case caching and activity publishing are disabled.
func NewDependencyManager(router *gin.Engine,
	mongodb *clients.MongoDB,
	redisClient *clients.RedisClient,
	rabbitMQ *clients.RabbitMQ,
	registry *prometheus.Registry,
	cfg *config.Configuration) *Manager {
	recorder := metrics.NewCollector(registry)

	var cacheService cache.Service
	if redisClient != nil {
		cacheService = cache.NewCacheService(redisClient.Client, cfg)
	} else {
		logrus.Warn("Redis not configured, caching disabled")
		cacheService = cache.NewNoopService()
	}

	var publisher clients.ActivityPublisher
	if rabbitMQ != nil {
		publisher = clients.NewActivityPublisher(rabbitMQ.Channel, &cfg.Queue.RabbitMQ)
	} else {
		logrus.Warn("RabbitMQ not configured, activity publishing disabled")
		publisher = clients.NewNoopActivityPublisher()
	}

	gateway := llm.New(&cfg.LLM, time.Duration(cfg.Database.Timeout)*time.Second, recorder)
	collections := cfg.Database.Collections

	userRepo := user.NewUserRepository(mongodb, collections.Users)
	userService := user.NewUserService(userRepo)

	sessionRepo := session.NewSessionRepository(mongodb, collections.Sessions)
	sessionService := session.NewSessionService(
		clients.NewIdentityClient(&cfg.Identity),
		userService,
		sessionRepo,
		cacheService,
		publisher,
		recorder,
		session.Options{
			TTL:              time.Duration(cfg.Security.SessionTTLDays) * 24 * time.Hour,
			RevocationWindow: cache.RevocationTTL(time.Duration(cfg.Cache.SessionExpirationMinutes) * time.Minute),
		},
	)

	emotionRepo := emotion.NewRepository(mongodb, collections.EmotionAnalysis)
	teamRepo := team.NewRepository(mongodb, collections.TeamMembers, collections.TeamPerformance)
	personaRepo := persona.NewRepository(mongodb, collections.Personas)
	complianceRepo := compliance.NewRepository(mongodb, collections.ComplianceReports)
	dnaRepo := dna.NewRepository(mongodb, collections.BusinessDNA)
	communityRepo := community.NewRepository(mongodb, collections.CommunityInsights)

	return &Manager{
		Router:   router,
		Config:   cfg,
		Mongodb:  mongodb,
		Redis:    redisClient,
		RabbitMQ: rabbitMQ,
		Gatherer: registry,

		Metrics:        recorder,
		CacheService:   cacheService,
		Publisher:      publisher,
		LLMGateway:     gateway,
		UserService:    userService,
		SessionService: sessionService,
		AuthMiddleware: middleware.NewAuthMiddleware(sessionService, cfg.Security.SessionCookieName),

		UserHandler:       user.NewHandler(),
		AuthHandler:       auth.NewHandler(cfg, sessionService),
		EmotionHandler:    emotion.NewHandler(cfg, emotion.NewService(emotionRepo, gateway, publisher)),
		TeamHandler:       team.NewHandler(cfg, team.NewService(teamRepo, publisher)),
		PersonaHandler:    persona.NewHandler(cfg, persona.NewService(personaRepo, gateway, publisher)),
		FundingHandler:    funding.NewHandler(funding.NewService()),
		ComplianceHandler: compliance.NewHandler(cfg, compliance.NewService(complianceRepo, publisher)),
		DNAHandler:        dna.NewHandler(cfg, dna.NewService(dnaRepo, gateway, publisher)),
		CommunityHandler:  community.NewHandler(cfg, community.NewService(communityRepo, gateway, publisher)),
		DashboardHandler:  dashboard.NewHandler(cfg, dashboard.NewService(cacheService)),
		EdgeHandler:       edge.NewHandler(),

		indexers: map[string]Indexer{
			collections.Sessions:          sessionRepo,
			collections.EmotionAnalysis:   emotionRepo,
			collections.TeamMembers:       teamRepo,
			collections.Personas:          personaRepo,
			collections.ComplianceReports: complianceRepo,
			collections.BusinessDNA:       dnaRepo,
			collections.CommunityInsights: communityRepo,
		},
	}
}

// EnsureIndexes creates the secondary indexes. Failures are logged and
// startup continues; queries still work without them.
func (m *Manager) EnsureIndexes(ctx context.Context) {
	for name, indexer := range m.indexers {
		if err := indexer.EnsureIndexes(ctx); err != nil {
			logrus.WithError(err).WithField("collection", name).Warn("Failed to ensure indexes")
		}
	}
}

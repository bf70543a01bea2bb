package server

import (
	"context"
	"net/http"
	"time"

	"bizpulse-api/src/internal/dependency"
	"bizpulse-api/src/internal/metrics"
	"bizpulse-api/src/internal/middleware"

	"github.com/gin-gonic/gin"
)

const (
	statusConnected    = "connected"
	statusDisconnected = "disconnected"
	statusDisabled     = "disabled"
)

func SetupRoutes(deps *dependency.Manager) {
	router := deps.Router
	router.Use(middleware.CORS(deps.Config.Security.CorsOrigins))

	setupHealthEndpoint(deps)
	setupPublicRoutes(router, deps)
	setupProtectedRoutes(router, deps)
}

func setupHealthEndpoint(deps *dependency.Manager) {
	router := deps.Router
	cfg := deps.Config

	router.GET("/health", func(c *gin.Context) {
		log.Debug("Health check endpoint requested")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		mongoStatus := "ok"
		if err := deps.Mongodb.Ping(ctx); err != nil {
			mongoStatus = "error: " + err.Error()
		}

		redisState := statusDisabled
		if deps.Redis != nil {
			redisState = "ok"
			if err := deps.Redis.Client.Ping(ctx).Err(); err != nil {
				redisState = "error: " + err.Error()
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   cfg.App.Name,
			"version":   cfg.App.Version,
			"mongodb":   mongoStatus,
			"redis":     redisState,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	router.GET("/health/detailed", func(c *gin.Context) {
		log.Debug("Detailed health check endpoint requested")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		c.JSON(http.StatusOK, gin.H{
			"status":  "operational",
			"service": cfg.App.Name,
			"version": cfg.App.Version,
			"components": gin.H{
				"database": gin.H{
					"mongodb": getStatus(deps.Mongodb.Ping(ctx) == nil),
					"redis":   redisStatus(ctx, deps),
				},
				"queue": gin.H{
					"rabbitmq": rabbitStatus(deps),
				},
				"services": gin.H{
					"auth":    "operational",
					"session": "operational",
					"llm":     cfg.LLM.Provider,
				},
			},
		})
	})
}

func setupPublicRoutes(router *gin.Engine, deps *dependency.Manager) {
	router.GET("/api/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "operational",
			"service": deps.Config.App.Name,
			"version": deps.Config.App.Version,
		})
	})

	router.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))

	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/session", setRouteName("createSession"), deps.AuthHandler.CreateSession)
		authRoutes.POST("/logout", setRouteName("logout"), deps.AuthHandler.Logout)
	}
}

func setupProtectedRoutes(router *gin.Engine, deps *dependency.Manager) {
	requireAuth := deps.AuthMiddleware.RequireAuth()

	// Apply route name FIRST, then auth middleware
	api := router.Group("/api")
	{
		api.GET("/auth/me", setRouteName("getMe"), requireAuth, deps.UserHandler.GetMe)

		api.POST("/emotion/analyze", setRouteName("analyzeEmotion"), requireAuth, deps.EmotionHandler.Analyze)
		api.GET("/emotion/history/:user_id", setRouteName("emotionHistory"), requireAuth, deps.EmotionHandler.History)

		api.POST("/team/add-member", setRouteName("addTeamMember"), requireAuth, deps.TeamHandler.AddMember)
		api.GET("/team/members/:user_id", setRouteName("teamMembers"), requireAuth, deps.TeamHandler.Members)
		api.POST("/team/analyze", setRouteName("analyzeTeam"), requireAuth, deps.TeamHandler.Analyze)
		api.GET("/team/recommendations/:team_id", setRouteName("teamRecommendations"), requireAuth, deps.TeamHandler.Recommendations)

		api.POST("/persona/generate", setRouteName("generatePersona"), requireAuth, deps.PersonaHandler.Generate)
		api.GET("/persona/all/:user_id", setRouteName("listPersonas"), requireAuth, deps.PersonaHandler.List)
		api.DELETE("/persona/:persona_id", setRouteName("deletePersona"), requireAuth, deps.PersonaHandler.Delete)

		api.POST("/funding/search", setRouteName("searchFunding"), requireAuth, deps.FundingHandler.Search)

		api.POST("/compliance/check", setRouteName("checkCompliance"), requireAuth, deps.ComplianceHandler.Check)
		api.GET("/compliance/history/:user_id", setRouteName("complianceHistory"), requireAuth, deps.ComplianceHandler.History)

		api.POST("/dna/generate", setRouteName("generateDNA"), requireAuth, deps.DNAHandler.Generate)
		api.GET("/dna/:user_id", setRouteName("getDNA"), requireAuth, deps.DNAHandler.Get)

		api.POST("/community/insights", setRouteName("communityInsights"), requireAuth, deps.CommunityHandler.Insights)
		api.GET("/community/kb/search", setRouteName("searchKnowledgeBase"), requireAuth, deps.CommunityHandler.SearchKnowledgeBase)
		api.GET("/community/experts", setRouteName("communityExperts"), requireAuth, deps.CommunityHandler.Experts)

		api.GET("/dashboard/stats", setRouteName("dashboardStats"), requireAuth, deps.DashboardHandler.Stats)
		api.GET("/dashboard/activities", setRouteName("dashboardActivities"), requireAuth, deps.DashboardHandler.Activities)

		api.GET("/edge/status", setRouteName("edgeStatus"), requireAuth, deps.EdgeHandler.Status)
		api.GET("/edge/models", setRouteName("edgeModels"), requireAuth, deps.EdgeHandler.Models)
	}
}

func setRouteName(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("route_name", name)
		c.Next()
	}
}

func redisStatus(ctx context.Context, deps *dependency.Manager) string {
	if deps.Redis == nil {
		return statusDisabled
	}
	return getStatus(deps.Redis.Client.Ping(ctx).Err() == nil)
}

func rabbitStatus(deps *dependency.Manager) string {
	if deps.RabbitMQ == nil {
		return statusDisabled
	}
	return getStatus(!deps.RabbitMQ.Conn.IsClosed())
}

func getStatus(b bool) string {
	if b {
		return statusConnected
	}
	return statusDisconnected
}

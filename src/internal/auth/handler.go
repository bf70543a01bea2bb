package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/models"
	"bizpulse-api/src/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionRequest carries the provider exchange id. Browsers post it in
// session_token; session_id is accepted as an alias. Identity fields the
// browser also sends are ignored: identity comes from the provider only.
type SessionRequest struct {
	SessionToken string `json:"session_token"`
	SessionID    string `json:"session_id"`
}

func (r *SessionRequest) exchangeID() string {
	if r.SessionToken != "" {
		return r.SessionToken
	}
	return r.SessionID
}

type SessionResponse struct {
	Success bool                        `json:"success"`
	User    *models.ProviderSessionData `json:"user"`
}

type Handler interface {
	CreateSession(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	sessionService session.Service
	cookie         session.CookieOptions
	timeout        time.Duration
	exposeErrors   bool
}

func NewHandler(cfg *config.Configuration, sessionService session.Service) Handler {
	cookie := session.DefaultCookieOptions()
	cookie.Name = cfg.Security.SessionCookieName
	cookie.Secure = cfg.Security.SecureCookie
	cookie.MaxAge = sessionService.TTL()
	if !cookie.Secure {
		cookie.SameSite = http.SameSiteLaxMode
	}

	return &handler{
		sessionService: sessionService,
		cookie:         cookie,
		timeout:        time.Duration(cfg.App.Timeout) * time.Second,
		exposeErrors:   cfg.Security.ExposeSessionError,
	}
}

func (h *handler) CreateSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Invalid session request body")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": "Request body must be JSON with a session_token",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	created, err := h.sessionService.CreateSession(ctx, req.exchangeID())
	if err != nil {
		h.handleCreateError(c, err)
		return
	}

	session.SetCookie(c.Writer, created.Session.SessionToken, h.cookie)

	c.JSON(http.StatusOK, SessionResponse{
		Success: true,
		User:    created.Provider,
	})
}

func (h *handler) handleCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidParams):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": "session_token is required",
		})
	case errors.Is(err, models.ErrUpstreamAuth):
		logrus.WithError(err).Warn("Identity provider rejected session exchange")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid session ID",
			"message": "Invalid session ID",
		})
	default:
		logrus.WithError(err).Error("Failed to create session")
		message := "Failed to create session"
		if h.exposeErrors {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Session creation failed",
			"message": message,
		})
	}
}

// Logout always succeeds, with or without a live session.
func (h *handler) Logout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	token := session.ExtractToken(c.Request, h.cookie.Name)
	h.sessionService.DestroySession(ctx, token)
	session.ClearCookie(c.Writer, h.cookie)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

package middleware

import (
	"errors"
	"net/http"

	"bizpulse-api/src/internal/models"
	"bizpulse-api/src/internal/session"
	"bizpulse-api/src/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthMiddleware gates routes on a valid session.
type AuthMiddleware struct {
	sessionService session.Service
	cookieName     string
}

func NewAuthMiddleware(sessionService session.Service, cookieName string) *AuthMiddleware {
	if cookieName == "" {
		cookieName = session.DefaultCookieName
	}
	return &AuthMiddleware{
		sessionService: sessionService,
		cookieName:     cookieName,
	}
}

// RequireAuth resolves the session token (cookie first, then bearer header)
// and stores the user in the context. Any failure aborts the chain.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := session.ExtractToken(c.Request, m.cookieName)

		current, err := m.sessionService.ResolveSession(c.Request.Context(), token)
		if err != nil {
			status, title := authErrorResponse(err)
			if status == http.StatusInternalServerError {
				logrus.WithError(err).Error("Session validation failed")
			} else {
				logrus.WithFields(logrus.Fields{
					"path":   c.Request.URL.Path,
					"reason": err.Error(),
				}).Debug("Request rejected")
			}

			c.AbortWithStatusJSON(status, gin.H{
				"error":   title,
				"message": title,
			})
			return
		}

		c.Set(user.ContextKey, current)
		c.Set("user_id", current.ID)

		logrus.WithField("user_id", current.ID).Debug("User authenticated successfully")

		c.Next()
	}
}

func authErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized, "Not authenticated"
	case errors.Is(err, models.ErrInvalidOrExpiredSession):
		return http.StatusUnauthorized, "Invalid or expired session"
	case errors.Is(err, models.ErrUserNotFound):
		return http.StatusUnauthorized, "User not found"
	default:
		return http.StatusInternalServerError, "Session validation error"
	}
}

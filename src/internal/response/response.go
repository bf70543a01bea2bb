package response

import (
	"errors"
	"net/http"

	"bizpulse-api/src/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Error writes the JSON error body for err, picking the status from the
// sentinel it wraps. Unknown errors are logged and hidden behind a 500.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidParams):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": err.Error(),
		})
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not found",
			"message": err.Error(),
		})
	case errors.Is(err, models.ErrUnauthenticated),
		errors.Is(err, models.ErrInvalidOrExpiredSession),
		errors.Is(err, models.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Not authenticated",
			"message": err.Error(),
		})
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": "Failed to process request",
		})
	}
}

// BindError reports a request body or query that failed validation.
func BindError(c *gin.Context, err error) {
	logrus.WithError(err).WithField("path", c.FullPath()).Debug("Invalid request")
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request",
		"message": err.Error(),
	})
}

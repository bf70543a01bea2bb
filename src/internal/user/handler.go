package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextKey is where the auth middleware stores the resolved *User.
const ContextKey = "current_user"

type Handler interface {
	GetMe(c *gin.Context)
}

type handler struct{}

func NewHandler() Handler {
	return &handler{}
}

func (h *handler) GetMe(c *gin.Context) {
	current, ok := Current(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Not authenticated",
			"message": "No session attached to request",
		})
		return
	}

	c.JSON(http.StatusOK, current)
}

// Current returns the user resolved by the auth middleware.
func Current(c *gin.Context) (*User, bool) {
	value, exists := c.Get(ContextKey)
	if !exists {
		return nil, false
	}
	u, ok := value.(*User)
	return u, ok && u != nil
}

// CurrentID returns the resolved user's id or "".
func CurrentID(c *gin.Context) string {
	if u, ok := Current(c); ok {
		return u.ID
	}
	return ""
}

// OwnerID returns the requested owner id, defaulting to the current user.
func OwnerID(c *gin.Context, requested string) string {
	if requested != "" {
		return requested
	}
	return CurrentID(c)
}

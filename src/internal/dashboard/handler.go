package dashboard

import (
	"context"
	"net/http"
	"time"

	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/response"
	"bizpulse-api/src/internal/user"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	Stats(c *gin.Context)
	Activities(c *gin.Context)
}

type handler struct {
	service Service
	timeout time.Duration
}

func NewHandler(cfg *config.Configuration, service Service) Handler {
	return &handler{
		service: service,
		timeout: time.Duration(cfg.App.Timeout) * time.Second,
	}
}

func (h *handler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	stats, err := h.service.Stats(ctx, user.CurrentID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *handler) Activities(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Activities())
}

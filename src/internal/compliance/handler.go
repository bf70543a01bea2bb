package compliance

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
	Check(c *gin.Context)
	History(c *gin.Context)
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

func (h *handler) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	report, err := h.service.Check(ctx, user.OwnerID(c, req.UserID), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *handler) History(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	reports, err := h.service.History(ctx, c.Param("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

package emotion

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/response"
	"bizpulse-api/src/internal/user"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	Analyze(c *gin.Context)
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

func (h *handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	analysis, err := h.service.Analyze(ctx, user.OwnerID(c, req.UserID), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func (h *handler) History(c *gin.Context) {
	limit := int64(DefaultHistoryLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BindError(c, err)
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	history, err := h.service.History(ctx, c.Param("user_id"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

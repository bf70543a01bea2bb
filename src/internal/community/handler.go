package community

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
	Insights(c *gin.Context)
	SearchKnowledgeBase(c *gin.Context)
	Experts(c *gin.Context)
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

func (h *handler) Insights(c *gin.Context) {
	var req InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	insights, err := h.service.Insights(ctx, user.CurrentID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}

func (h *handler) SearchKnowledgeBase(c *gin.Context) {
	query := SearchQuery{Limit: DefaultSearchLimit}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	articles, err := h.service.SearchKnowledgeBase(query.Query, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, articles)
}

func (h *handler) Experts(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Experts(c.Query("topic")))
}

package team

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
	AddMember(c *gin.Context)
	Members(c *gin.Context)
	Analyze(c *gin.Context)
	Recommendations(c *gin.Context)
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

func (h *handler) AddMember(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	member, err := h.service.AddMember(ctx, user.OwnerID(c, req.UserID), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *handler) Members(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	members, err := h.service.Members(ctx, c.Param("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

func (h *handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	performance, err := h.service.Analyze(ctx, user.CurrentID(c), req.TeamID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, performance)
}

func (h *handler) Recommendations(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Recommendations(c.Param("team_id")))
}

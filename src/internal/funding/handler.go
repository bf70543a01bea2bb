package funding

import (
	"net/http"

	"bizpulse-api/src/internal/response"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	Search(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

func (h *handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.service.Search(&req))
}

// Package edge reports on-device inference. Nothing runs at the edge yet,
// so both endpoints describe the cloud fallback.
package edge

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	Status(c *gin.Context)
	Models(c *gin.Context)
}

type handler struct{}

func NewHandler() Handler {
	return &handler{}
}

func (h *handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, Status{
		Enabled: false,
		Mode:    "cloud",
		Message: "Edge AI feature is mocked for now. Using cloud AI.",
	})
}

func (h *handler) Models(c *gin.Context) {
	c.JSON(http.StatusOK, []Model{
		{ID: "tinyllama", Name: "TinyLlama-1.1B", Size: "1.1GB", Status: "not_loaded", Type: "LLM"},
		{ID: "minilm", Name: "MiniLM-L6-v2", Size: "90MB", Status: "not_loaded", Type: "Embedding"},
	})
}

package edge

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bizpulse-api/src/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestStatusAndModels(t *testing.T) {
	h := NewHandler()
	router := testutil.Router("u1")
	router.GET("/api/edge/status", h.Status)
	router.GET("/api/edge/models", h.Models)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/edge/status", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"enabled":false,"mode":"cloud","models_loaded":0,"cache_size":0,"message":"Edge AI feature is mocked for now. Using cloud AI."}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/edge/models", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"tinyllama"`)
	assert.Contains(t, w.Body.String(), `"type":"Embedding"`)
}

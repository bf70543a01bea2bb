package persona

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/models"
	"bizpulse-api/src/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	rows []ClientPersona
}

func (m *memoryRepository) Create(ctx context.Context, persona *ClientPersona) error {
	if ctx.Err() != nil {
		return models.ErrDatabaseInsert
	}
	m.rows = append(m.rows, *persona)
	return nil
}

func (m *memoryRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]ClientPersona, error) {
	out := make([]ClientPersona, 0)
	for _, row := range m.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memoryRepository) DeleteByID(ctx context.Context, id string) (*ClientPersona, error) {
	for i, row := range m.rows {
		if row.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return &row, nil
		}
	}
	return nil, fmt.Errorf("%w: persona %s", models.ErrNotFound, id)
}

func (m *memoryRepository) EnsureIndexes(ctx context.Context) error { return nil }

func TestGenerate_UsesRequestAndTemplate(t *testing.T) {
	repo := &memoryRepository{}
	gateway := &testutil.Gateway{Reply: "persona notes"}
	publisher := &testutil.Publisher{}
	svc := NewService(repo, gateway, publisher)

	persona, err := svc.Generate(context.Background(), "u1", &GenerateRequest{
		Industry:    "Fintech",
		CompanySize: "50-200",
		BudgetRange: "$50k-$100k",
	})
	require.NoError(t, err)

	assert.Equal(t, "Fintech", persona.Industry)
	assert.Equal(t, "Sarah Johnson", persona.Name)
	assert.Len(t, persona.PainPoints, 3)
	require.Len(t, persona.Stakeholders, 1)
	assert.Equal(t, "CTO", persona.Stakeholders[0].Role)
	assert.Equal(t, "persona notes", persona.AISummary)
	assert.Contains(t, gateway.Prompts[0], "Industry: Fintech")
	assert.Contains(t, gateway.Prompts[0], "Context: None")
	assert.Equal(t, []string{models.ActionPersonaGenerated}, publisher.Actions())
}

func TestGenerate_StalledAIStillPersists(t *testing.T) {
	repo := &memoryRepository{}
	svc := NewService(repo, testutil.StalledGateway(), &testutil.Publisher{})

	ctx, cancel := context.WithTimeout(context.Background(), testutil.StalledReserve+100*time.Millisecond)
	defer cancel()

	persona, err := svc.Generate(ctx, "u1", &GenerateRequest{Industry: "Retail", CompanySize: "10", BudgetRange: "low"})
	require.NoError(t, err)
	assert.Contains(t, persona.AISummary, "(simulated response)")
	assert.Len(t, repo.rows, 1)
}

func TestGenerate_TemplateIsNotShared(t *testing.T) {
	svc := NewService(&memoryRepository{}, &testutil.Gateway{}, &testutil.Publisher{})
	req := &GenerateRequest{Industry: "Retail", CompanySize: "10", BudgetRange: "low"}

	first, err := svc.Generate(context.Background(), "u1", req)
	require.NoError(t, err)
	first.PainPoints[0] = "mutated"

	second, err := svc.Generate(context.Background(), "u1", req)
	require.NoError(t, err)
	assert.Equal(t, "Manual processes consuming too much time", second.PainPoints[0])
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(&memoryRepository{}, &testutil.Gateway{}, &testutil.Publisher{})

	err := svc.Delete(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestHandler_DeleteFlow(t *testing.T) {
	repo := &memoryRepository{}
	publisher := &testutil.Publisher{}
	svc := NewService(repo, &testutil.Gateway{}, publisher)
	h := NewHandler(&config.Configuration{App: config.Application{Timeout: 5}}, svc)

	router := testutil.Router("u1")
	router.POST("/api/persona/generate", h.Generate)
	router.GET("/api/persona/all/:user_id", h.List)
	router.DELETE("/api/persona/:persona_id", h.Delete)

	req := httptest.NewRequest(http.MethodPost, "/api/persona/generate",
		strings.NewReader(`{"industry":"Health","company_size":"SMB","budget_range":"10k"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, repo.rows, 1)
	id := repo.rows[0].ID

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/persona/"+id, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/persona/"+id, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/persona/all/u1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	assert.Equal(t, []string{models.ActionPersonaGenerated, models.ActionPersonaDeleted}, publisher.Actions())
}

package compliance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/models"
	"bizpulse-api/src/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	rows    []Report
	listErr error
}

func (m *memoryRepository) Create(ctx context.Context, report *Report) error {
	m.rows = append(m.rows, *report)
	return nil
}

func (m *memoryRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]Report, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]Report, 0)
	for i := len(m.rows) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if m.rows[i].UserID == userID {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

func (m *memoryRepository) EnsureIndexes(ctx context.Context) error { return nil }

func TestCheck_ScoresAndPersists(t *testing.T) {
	repo := &memoryRepository{}
	publisher := &testutil.Publisher{}
	svc := NewService(repo, publisher)

	report, err := svc.Check(context.Background(), "u1", &CheckRequest{CompanyName: "Acme"})
	require.NoError(t, err)

	require.Len(t, report.Checks, 2)
	assert.Equal(t, StatusCompliant, report.Checks[0].Status)
	assert.NotNil(t, report.Checks[0].Issues)
	assert.InDelta(t, 83.5, report.OverallScore, 1e-9)
	assert.Len(t, repo.rows, 1)
	assert.Equal(t, []string{models.ActionComplianceChecked}, publisher.Actions())
}

func TestOverallScore_Empty(t *testing.T) {
	assert.Zero(t, OverallScore(nil))
}

func TestHandler_History(t *testing.T) {
	repo := &memoryRepository{}
	h := NewHandler(&config.Configuration{App: config.Application{Timeout: 5}}, NewService(repo, &testutil.Publisher{}))

	router := testutil.Router("u1")
	router.POST("/api/compliance/check", h.Check)
	router.GET("/api/compliance/history/:user_id", h.History)

	body := `{"company_name":"Acme","industry":"Retail","size":"small","location":"NY"}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/compliance/check", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/compliance/history/u1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, strings.Count(w.Body.String(), `"overall_score"`))

	repo.listErr = models.ErrDatabaseQuery
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/compliance/history/u1", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

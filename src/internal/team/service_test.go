package team

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
	members     []Member
	performance []Performance
}

func (m *memoryRepository) CreateMember(ctx context.Context, member *Member) error {
	m.members = append(m.members, *member)
	return nil
}

func (m *memoryRepository) ListMembers(ctx context.Context, userID string, limit int64) ([]Member, error) {
	out := make([]Member, 0)
	for _, member := range m.members {
		if member.UserID == userID && int64(len(out)) < limit {
			out = append(out, member)
		}
	}
	return out, nil
}

func (m *memoryRepository) CountMembers(ctx context.Context, userID string) (int64, error) {
	var n int64
	for _, member := range m.members {
		if member.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (m *memoryRepository) CreatePerformance(ctx context.Context, performance *Performance) error {
	m.performance = append(m.performance, *performance)
	return nil
}

func (m *memoryRepository) EnsureIndexes(ctx context.Context) error { return nil }

func TestAnalyze_TeamSizeIsMemberCount(t *testing.T) {
	repo := &memoryRepository{}
	publisher := &testutil.Publisher{}
	svc := NewService(repo, publisher)
	ctx := context.Background()

	for _, name := range []string{"Ann", "Bob", "Cy"} {
		_, err := svc.AddMember(ctx, "u1", &AddMemberRequest{Name: name, Role: "Engineer"})
		require.NoError(t, err)
	}
	_, err := svc.AddMember(ctx, "u2", &AddMemberRequest{Name: "Dee", Role: "PM"})
	require.NoError(t, err)

	performance, err := svc.Analyze(ctx, "u1", "u1")
	require.NoError(t, err)

	assert.Equal(t, 3, performance.TeamSize)
	assert.Equal(t, "u1", performance.TeamID)
	assert.InDelta(t, 85.0, performance.ProductivityScore, 1e-9)
	assert.NotEmpty(t, performance.ID)
	assert.Len(t, repo.performance, 1)
	assert.Equal(t, models.ActionTeamAnalyzed, publisher.Actions()[4])
}

func TestAddMember_Validation(t *testing.T) {
	svc := NewService(&memoryRepository{}, &testutil.Publisher{})

	_, err := svc.AddMember(context.Background(), "u1", &AddMemberRequest{Name: "Ann"})
	assert.ErrorIs(t, err, models.ErrInvalidParams)
}

func TestRecommendations_AreCopies(t *testing.T) {
	svc := NewService(&memoryRepository{}, &testutil.Publisher{})

	first := svc.Recommendations("t1")
	require.Len(t, first, 2)
	first[0].Title = "changed"

	assert.Equal(t, "Schedule Team Building Activity", svc.Recommendations("t1")[0].Title)
}

func TestHandler_AddAndListMembers(t *testing.T) {
	repo := &memoryRepository{}
	h := NewHandler(&config.Configuration{App: config.Application{Timeout: 5}}, NewService(repo, &testutil.Publisher{}))

	router := testutil.Router("u1")
	router.POST("/api/team/add-member", h.AddMember)
	router.GET("/api/team/members/:user_id", h.Members)
	router.POST("/api/team/analyze", h.Analyze)

	req := httptest.NewRequest(http.MethodPost, "/api/team/add-member", strings.NewReader(`{"name":"Ann","role":"CTO"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/team/members/u1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Ann"`)

	req = httptest.NewRequest(http.MethodPost, "/api/team/analyze", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

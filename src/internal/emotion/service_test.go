package emotion

import (
	"context"
	"sort"
	"testing"
	"time"

	"bizpulse-api/src/internal/models"
	"bizpulse-api/src/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	rows      []Analysis
	createErr error
}

func (m *memoryRepository) Create(ctx context.Context, analysis *Analysis) error {
	if m.createErr != nil {
		return m.createErr
	}
	if ctx.Err() != nil {
		return models.ErrDatabaseInsert
	}
	m.rows = append(m.rows, *analysis)
	return nil
}

func (m *memoryRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]Analysis, error) {
	out := make([]Analysis, 0)
	for _, row := range m.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryRepository) EnsureIndexes(ctx context.Context) error { return nil }

func newTestService(repo Repository) (*service, *testutil.Gateway, *testutil.Publisher) {
	gateway := &testutil.Gateway{Reply: "mostly positive"}
	publisher := &testutil.Publisher{}
	svc := NewService(repo, gateway, publisher).(*service)
	return svc, gateway, publisher
}

func TestAnalyze_PersistsWithSummary(t *testing.T) {
	repo := &memoryRepository{}
	svc, gateway, publisher := newTestService(repo)
	fixed := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	note := "quarterly review"

	analysis, err := svc.Analyze(context.Background(), "u1", &AnalyzeRequest{Text: "We beat the target!", Context: &note})
	require.NoError(t, err)

	assert.NotEmpty(t, analysis.ID)
	assert.Equal(t, "u1", analysis.UserID)
	assert.Equal(t, "joy", analysis.DominantEmotion)
	assert.InDelta(t, 0.75, analysis.Confidence, 1e-9)
	assert.Len(t, analysis.Emotions, 6)
	assert.Equal(t, fixed, analysis.Timestamp)
	assert.Equal(t, "mostly positive", analysis.AISummary)

	require.Len(t, gateway.Prompts, 1)
	assert.Contains(t, gateway.Prompts[0], `"We beat the target!"`)
	assert.Contains(t, gateway.Prompts[0], "Context: quarterly review")
	assert.Equal(t, systemMessage, gateway.Systems[0])

	require.Len(t, repo.rows, 1)
	assert.Equal(t, analysis.ID, repo.rows[0].ID)
	assert.Equal(t, []string{models.ActionEmotionAnalyzed}, publisher.Actions())
}

func TestAnalyze_StalledAIStillPersists(t *testing.T) {
	repo := &memoryRepository{}
	svc := NewService(repo, testutil.StalledGateway(), &testutil.Publisher{})

	ctx, cancel := context.WithTimeout(context.Background(), testutil.StalledReserve+100*time.Millisecond)
	defer cancel()

	analysis, err := svc.Analyze(ctx, "u1", &AnalyzeRequest{Text: "slow day"})
	require.NoError(t, err)
	assert.Contains(t, analysis.AISummary, "(simulated response)")
	assert.Len(t, repo.rows, 1)
}

func TestAnalyze_PromptKeepsTextVerbatim(t *testing.T) {
	svc, gateway, _ := newTestService(&memoryRepository{})

	_, err := svc.Analyze(context.Background(), "u1", &AnalyzeRequest{Text: `Café said "wow"`})
	require.NoError(t, err)

	require.Len(t, gateway.Prompts, 1)
	assert.Contains(t, gateway.Prompts[0], `Text: "Café said "wow""`)
	assert.NotContains(t, gateway.Prompts[0], `\u00e9`)
}

func TestAnalyze_RequiresText(t *testing.T) {
	repo := &memoryRepository{}
	svc, gateway, _ := newTestService(repo)

	_, err := svc.Analyze(context.Background(), "u1", &AnalyzeRequest{})
	assert.ErrorIs(t, err, models.ErrInvalidParams)
	assert.Empty(t, gateway.Prompts)
	assert.Empty(t, repo.rows)
}

func TestAnalyze_StoreFailureNotPublished(t *testing.T) {
	repo := &memoryRepository{createErr: models.ErrDatabaseInsert}
	svc, _, publisher := newTestService(repo)

	_, err := svc.Analyze(context.Background(), "u1", &AnalyzeRequest{Text: "hi"})
	assert.ErrorIs(t, err, models.ErrDatabaseInsert)
	assert.Empty(t, publisher.Actions())
}

func TestHistory_NewestFirstAndLimit(t *testing.T) {
	repo := &memoryRepository{}
	svc, _, _ := newTestService(repo)
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		svc.now = func() time.Time { return at }
		_, err := svc.Analyze(context.Background(), "u1", &AnalyzeRequest{Text: "t"})
		require.NoError(t, err)
	}

	history, err := svc.History(context.Background(), "u1", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Timestamp.After(history[1].Timestamp))

	_, err = svc.History(context.Background(), "u1", 0)
	assert.ErrorIs(t, err, models.ErrInvalidParams)
}

package emotion

import (
	"context"
	"fmt"
	"time"

	"bizpulse-api/src/clients"
	"bizpulse-api/src/internal/llm"
	"bizpulse-api/src/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500

	systemMessage = "You are an expert emotion analyst."
)

type Service interface {
	Analyze(ctx context.Context, userID string, req *AnalyzeRequest) (*Analysis, error)
	History(ctx context.Context, userID string, limit int64) ([]Analysis, error)
}

type service struct {
	repo      Repository
	gateway   llm.Gateway
	publisher clients.ActivityPublisher
	now       func() time.Time
}

func NewService(repo Repository, gateway llm.Gateway, publisher clients.ActivityPublisher) Service {
	return &service{
		repo:      repo,
		gateway:   gateway,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *service) Analyze(ctx context.Context, userID string, req *AnalyzeRequest) (*Analysis, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("%w: text is required", models.ErrInvalidParams)
	}

	summary := s.gateway.Generate(ctx, buildPrompt(req), systemMessage)

	analysis := &Analysis{
		ID:              uuid.NewString(),
		UserID:          userID,
		Text:            req.Text,
		Emotions:        baselineScores(),
		DominantEmotion: baselineDominant,
		Confidence:      baselineConfidence,
		Timestamp:       s.now().UTC(),
		Context:         req.Context,
		AISummary:       summary,
	}

	if err := s.repo.Create(ctx, analysis); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"analysis_id": analysis.ID,
	}).Info("Emotion analysis stored")

	clients.PublishBestEffort(s.publisher, userID, models.ServiceEmotion, models.ActionEmotionAnalyzed,
		map[string]string{"analysis_id": analysis.ID})

	return analysis, nil
}

func (s *service) History(ctx context.Context, userID string, limit int64) ([]Analysis, error) {
	if limit <= 0 || limit > MaxHistoryLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", models.ErrInvalidParams, MaxHistoryLimit)
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

func buildPrompt(req *AnalyzeRequest) string {
	ctxText := "None"
	if req.Context != nil && *req.Context != "" {
		ctxText = *req.Context
	}

	return fmt.Sprintf(`Analyze the emotional content of this text and return emotion scores:
Text: "%s"
Context: %s

Provide scores (0-1) for: joy, sadness, anger, fear, surprise, neutral.
Identify the dominant emotion and confidence level.`, req.Text, ctxText)
}

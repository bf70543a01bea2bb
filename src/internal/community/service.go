package community

import (
	"context"
	"fmt"
	"time"

	"bizpulse-api/src/clients"
	"bizpulse-api/src/internal/llm"
	"bizpulse-api/src/internal/models"

	"github.com/sirupsen/logrus"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 100

	systemMessage = "You are a business community analyst."
)

type Service interface {
	Insights(ctx context.Context, userID string, req *InsightsRequest) ([]Insight, error)
	SearchKnowledgeBase(query string, limit int) ([]Article, error)
	Experts(topic string) []Expert
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

func (s *service) Insights(ctx context.Context, userID string, req *InsightsRequest) ([]Insight, error) {
	if req.Industry == "" || req.Topic == "" {
		return nil, fmt.Errorf("%w: industry and topic are required", models.ErrInvalidParams)
	}

	summary := s.gateway.Generate(ctx, buildPrompt(req), systemMessage)

	insights := seedInsights(req.Industry, s.now().UTC())
	for i := range insights {
		insights[i].UserID = userID
		insights[i].AISummary = summary
	}

	if err := s.repo.CreateMany(ctx, insights); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"industry": req.Industry,
		"count":    len(insights),
	}).Info("Community insights generated")

	clients.PublishBestEffort(s.publisher, userID, models.ServiceCommunity, models.ActionInsightsGenerated,
		map[string]string{"industry": req.Industry, "topic": req.Topic})

	return insights, nil
}

func (s *service) SearchKnowledgeBase(query string, limit int) ([]Article, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", models.ErrInvalidParams)
	}
	if limit <= 0 || limit > MaxSearchLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", models.ErrInvalidParams, MaxSearchLimit)
	}

	results := make([]Article, 0)
	for _, article := range articles {
		if len(results) == limit {
			break
		}
		if article.matches(query) {
			results = append(results, article)
		}
	}
	return results, nil
}

// Experts lists everyone when topic is empty.
func (s *service) Experts(topic string) []Expert {
	results := make([]Expert, 0, len(experts))
	for _, expert := range experts {
		if topic == "" || expert.covers(topic) {
			results = append(results, expert)
		}
	}
	return results
}

func buildPrompt(req *InsightsRequest) string {
	return fmt.Sprintf(`Summarize what the business community is discussing:
Industry: %s
Topic: %s
Timeframe: last %s

List notable trends, best practices, warnings and opportunities.`,
		req.Industry, req.Topic, req.Timeframe)
}

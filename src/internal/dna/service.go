package dna

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bizpulse-api/src/clients"
	"bizpulse-api/src/internal/llm"
	"bizpulse-api/src/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const systemMessage = "You are an expert business strategist."

type Service interface {
	Generate(ctx context.Context, userID string, req *GenerateRequest) (*BusinessDNA, error)
	Latest(ctx context.Context, userID string) (*BusinessDNA, error)
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

func (s *service) Generate(ctx context.Context, userID string, req *GenerateRequest) (*BusinessDNA, error) {
	if req.CompanyName == "" {
		return nil, fmt.Errorf("%w: company_name is required", models.ErrInvalidParams)
	}

	profile := &BusinessDNA{
		ID:          uuid.NewString(),
		CompanyID:   uuid.NewString(),
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Stage:       req.Stage,
		Personality: baselinePersonality(),
		SWOT:        baselineSWOT(),
		Preferences: baselinePreferences(),
		CreatedAt:   s.now().UTC(),
		UserID:      userID,
		AISummary:   s.gateway.Generate(ctx, buildPrompt(req), systemMessage),
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"company_id": profile.CompanyID,
	}).Info("Business DNA generated")

	clients.PublishBestEffort(s.publisher, userID, models.ServiceDNA, models.ActionDNAGenerated,
		map[string]string{"dna_id": profile.ID})

	return profile, nil
}

func (s *service) Latest(ctx context.Context, userID string) (*BusinessDNA, error) {
	return s.repo.FindLatestByUser(ctx, userID)
}

func buildPrompt(req *GenerateRequest) string {
	return fmt.Sprintf(`Profile the business personality of this company:
Company: %s
Industry: %s
Stage: %s
Size: %s
Values: %s
Challenges: %s

Summarize innovation, risk tolerance, customer centricity, data orientation and agility, then give a short SWOT.`,
		req.CompanyName, req.Industry, req.Stage, req.Size,
		joinOrNone(req.Values), joinOrNone(req.Challenges))
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

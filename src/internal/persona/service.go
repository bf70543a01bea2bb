package persona

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
	MaxPersonas = 100

	systemMessage = "You are an expert B2B persona strategist."
)

type Service interface {
	Generate(ctx context.Context, userID string, req *GenerateRequest) (*ClientPersona, error)
	List(ctx context.Context, userID string) ([]ClientPersona, error)
	Delete(ctx context.Context, actorID, personaID string) error
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

func (s *service) Generate(ctx context.Context, userID string, req *GenerateRequest) (*ClientPersona, error) {
	if req.Industry == "" || req.CompanySize == "" || req.BudgetRange == "" {
		return nil, fmt.Errorf("%w: industry, company_size and budget_range are required", models.ErrInvalidParams)
	}

	summary := s.gateway.Generate(ctx, buildPrompt(req), systemMessage)

	persona := template()
	persona.ID = uuid.NewString()
	persona.Industry = req.Industry
	persona.CompanySize = req.CompanySize
	persona.BudgetRange = req.BudgetRange
	persona.CreatedAt = s.now().UTC()
	persona.UserID = userID
	persona.AISummary = summary

	if err := s.repo.Create(ctx, &persona); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"persona_id": persona.ID,
		"industry":   persona.Industry,
	}).Info("Persona generated")

	clients.PublishBestEffort(s.publisher, userID, models.ServicePersona, models.ActionPersonaGenerated,
		map[string]string{"persona_id": persona.ID})

	return &persona, nil
}

func (s *service) List(ctx context.Context, userID string) ([]ClientPersona, error) {
	return s.repo.ListByUser(ctx, userID, MaxPersonas)
}

func (s *service) Delete(ctx context.Context, actorID, personaID string) error {
	deleted, err := s.repo.DeleteByID(ctx, personaID)
	if err != nil {
		return err
	}

	clients.PublishBestEffort(s.publisher, actorID, models.ServicePersona, models.ActionPersonaDeleted,
		map[string]string{"persona_id": deleted.ID, "owner_id": deleted.UserID})

	return nil
}

func buildPrompt(req *GenerateRequest) string {
	ctxText := "None"
	if req.Context != nil && *req.Context != "" {
		ctxText = *req.Context
	}

	return fmt.Sprintf(`Generate a detailed B2B client persona for:
Industry: %s
Company Size: %s
Budget Range: %s
Context: %s

Include: name, title, company details, 3-5 pain points, goals, decision style, and key stakeholders.`,
		req.Industry, req.CompanySize, req.BudgetRange, ctxText)
}

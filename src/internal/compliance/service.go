package compliance

import (
	"context"
	"time"

	"bizpulse-api/src/clients"
	"bizpulse-api/src/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const HistoryLimit = 50

type Service interface {
	Check(ctx context.Context, userID string, req *CheckRequest) (*Report, error)
	History(ctx context.Context, userID string) ([]Report, error)
}

type service struct {
	repo      Repository
	publisher clients.ActivityPublisher
	now       func() time.Time
}

func NewService(repo Repository, publisher clients.ActivityPublisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *service) Check(ctx context.Context, userID string, req *CheckRequest) (*Report, error) {
	checks := baselineChecks()
	report := &Report{
		ID:           uuid.NewString(),
		Timestamp:    s.now().UTC(),
		Checks:       checks,
		OverallScore: OverallScore(checks),
		UserID:       userID,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":       userID,
		"company":       req.CompanyName,
		"overall_score": report.OverallScore,
	}).Info("Compliance check stored")

	clients.PublishBestEffort(s.publisher, userID, models.ServiceCompliance, models.ActionComplianceChecked,
		map[string]string{"report_id": report.ID})

	return report, nil
}

func (s *service) History(ctx context.Context, userID string) ([]Report, error) {
	return s.repo.ListByUser(ctx, userID, HistoryLimit)
}

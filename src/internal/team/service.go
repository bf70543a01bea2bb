package team

import (
	"context"
	"fmt"
	"time"

	"bizpulse-api/src/clients"
	"bizpulse-api/src/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const MaxMembers = 100

// Baseline scores reported by Analyze.
const (
	baselineProductivity  = 85.0
	baselineCollaboration = 78.0
	baselineMorale        = 72.0
	baselineBurnoutRisk   = 35.0
)

type Service interface {
	AddMember(ctx context.Context, userID string, req *AddMemberRequest) (*Member, error)
	Members(ctx context.Context, userID string) ([]Member, error)
	Analyze(ctx context.Context, actorID, teamID string) (*Performance, error)
	Recommendations(teamID string) []Recommendation
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

func (s *service) AddMember(ctx context.Context, userID string, req *AddMemberRequest) (*Member, error) {
	if req.Name == "" || req.Role == "" {
		return nil, fmt.Errorf("%w: name and role are required", models.ErrInvalidParams)
	}

	member := &Member{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Role:   req.Role,
		Avatar: req.Avatar,
		UserID: userID,
	}
	if err := s.repo.CreateMember(ctx, member); err != nil {
		return nil, err
	}

	clients.PublishBestEffort(s.publisher, userID, models.ServiceTeam, models.ActionTeamMemberAdded,
		map[string]string{"member_id": member.ID})

	return member, nil
}

func (s *service) Members(ctx context.Context, userID string) ([]Member, error) {
	return s.repo.ListMembers(ctx, userID, MaxMembers)
}

func (s *service) Analyze(ctx context.Context, actorID, teamID string) (*Performance, error) {
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", models.ErrInvalidParams)
	}

	size, err := s.repo.CountMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if size > MaxMembers {
		size = MaxMembers
	}

	performance := &Performance{
		ID:                 uuid.NewString(),
		TeamID:             teamID,
		ProductivityScore:  baselineProductivity,
		CollaborationLevel: baselineCollaboration,
		Morale:             baselineMorale,
		BurnoutRisk:        baselineBurnoutRisk,
		TeamSize:           int(size),
		Timestamp:          s.now().UTC(),
	}
	if err := s.repo.CreatePerformance(ctx, performance); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"team_id":   teamID,
		"team_size": performance.TeamSize,
	}).Info("Team performance analyzed")

	clients.PublishBestEffort(s.publisher, actorID, models.ServiceTeam, models.ActionTeamAnalyzed,
		map[string]string{"team_id": teamID})

	return performance, nil
}

func (s *service) Recommendations(teamID string) []Recommendation {
	out := make([]Recommendation, len(recommendations))
	copy(out, recommendations)
	return out
}

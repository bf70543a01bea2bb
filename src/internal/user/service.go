package user

import (
	"context"
	"errors"
	"time"

	"bizpulse-api/src/internal/models"

	"github.com/sirupsen/logrus"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*User, error)
	FindOrCreate(ctx context.Context, data *models.ProviderSessionData, now time.Time) (*User, error)
}

type userService struct {
	userRepository Repository
}

func NewUserService(userRepository Repository) Service {
	return &userService{userRepository: userRepository}
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	return s.userRepository.FindByID(ctx, id)
}

// FindOrCreate returns the stored user for the provider id, inserting it on
// first sight. A concurrent insert of the same id counts as success.
func (s *userService) FindOrCreate(ctx context.Context, data *models.ProviderSessionData, now time.Time) (*User, error) {
	existing, err := s.userRepository.FindByID(ctx, data.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}

	newUser := FromProvider(data, now)
	err = s.userRepository.Create(ctx, newUser)
	switch {
	case err == nil:
		logrus.WithField("user_id", newUser.ID).Info("New user created")
		return newUser, nil
	case errors.Is(err, models.ErrDuplicateRecord):
		logrus.WithField("user_id", newUser.ID).Debug("User created concurrently, reloading")
		return s.userRepository.FindByID(ctx, data.ID)
	default:
		return nil, err
	}
}

package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"bizpulse-api/src/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	users     map[string]*User
	createErr error
	creates   int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{users: map[string]*User{}}
}

func (m *memoryRepository) FindByID(ctx context.Context, id string) (*User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, models.ErrUserNotFound
}

func (m *memoryRepository) Create(ctx context.Context, u *User) error {
	m.creates++
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.users[u.ID]; ok {
		return models.ErrDuplicateRecord
	}
	m.users[u.ID] = u
	return nil
}

var now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func TestFindOrCreate_CreatesOnce(t *testing.T) {
	repo := newMemoryRepository()
	svc := NewUserService(repo)
	data := &models.ProviderSessionData{ID: "u1", Email: "a@b.com", Name: "A", SessionToken: "tok-1"}

	first, err := svc.FindOrCreate(context.Background(), data, now)
	require.NoError(t, err)
	second, err := svc.FindOrCreate(context.Background(), data, now.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 1, repo.creates)
	assert.Len(t, repo.users, 1)
	assert.Equal(t, "u1", second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Nil(t, first.Picture)
}

func TestFindOrCreate_DuplicateRaceReloads(t *testing.T) {
	repo := newMemoryRepository()
	repo.createErr = models.ErrDuplicateRecord
	winner := &User{ID: "u1", Email: "winner@b.com"}

	svc := NewUserService(&raceRepository{memoryRepository: repo, winner: winner})
	got, err := svc.FindOrCreate(context.Background(), &models.ProviderSessionData{ID: "u1"}, now)

	require.NoError(t, err)
	assert.Equal(t, "winner@b.com", got.Email)
}

func TestFindOrCreate_StoreError(t *testing.T) {
	repo := newMemoryRepository()
	repo.createErr = models.ErrDatabaseInsert
	svc := NewUserService(repo)

	_, err := svc.FindOrCreate(context.Background(), &models.ProviderSessionData{ID: "u1"}, now)
	assert.True(t, errors.Is(err, models.ErrDatabaseInsert))
}

func TestFromProvider_Picture(t *testing.T) {
	u := FromProvider(&models.ProviderSessionData{ID: "u1", Picture: "https://img"}, now)
	require.NotNil(t, u.Picture)
	assert.Equal(t, "https://img", *u.Picture)
}

// raceRepository simulates another request inserting the user between the
// lookup and the insert.
type raceRepository struct {
	*memoryRepository
	winner  *User
	lookups int
}

func (r *raceRepository) FindByID(ctx context.Context, id string) (*User, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, models.ErrUserNotFound
	}
	return r.winner, nil
}

package team

import (
	"context"

	"bizpulse-api/src/clients"
	"bizpulse-api/src/internal/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	CreateMember(ctx context.Context, member *Member) error
	ListMembers(ctx context.Context, userID string, limit int64) ([]Member, error)
	CountMembers(ctx context.Context, userID string) (int64, error)
	CreatePerformance(ctx context.Context, performance *Performance) error
	EnsureIndexes(ctx context.Context) error
}

type repository struct {
	members     *mongo.Collection
	performance *mongo.Collection
}

func NewRepository(db *clients.MongoDB, membersCollection, performanceCollection string) Repository {
	return &repository{
		members:     db.Database.Collection(membersCollection),
		performance: db.Database.Collection(performanceCollection),
	}
}

func (r *repository) CreateMember(ctx context.Context, member *Member) error {
	if _, err := r.members.InsertOne(ctx, member); err != nil {
		logrus.WithError(err).WithField("user_id", member.UserID).Error("Failed to insert team member")
		return models.ErrDatabaseInsert
	}
	return nil
}

func (r *repository) ListMembers(ctx context.Context, userID string, limit int64) ([]Member, error) {
	cursor, err := r.members.Find(ctx, bson.M{"user_id": userID}, options.Find().SetLimit(limit))
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to query team members")
		return nil, models.ErrDatabaseQuery
	}

	members := make([]Member, 0)
	if err := cursor.All(ctx, &members); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to decode team members")
		return nil, models.ErrDatabaseQuery
	}
	return members, nil
}

func (r *repository) CountMembers(ctx context.Context, userID string) (int64, error) {
	count, err := r.members.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to count team members")
		return 0, models.ErrDatabaseQuery
	}
	return count, nil
}

func (r *repository) CreatePerformance(ctx context.Context, performance *Performance) error {
	if _, err := r.performance.InsertOne(ctx, performance); err != nil {
		logrus.WithError(err).WithField("team_id", performance.TeamID).Error("Failed to insert team performance")
		return models.ErrDatabaseInsert
	}
	return nil
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	if _, err := r.members.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	}); err != nil {
		return err
	}
	_, err := r.performance.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "team_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}

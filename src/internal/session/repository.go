package session

import (
	"context"
	"errors"
	"time"

	"bizpulse-api/src/clients"
	"bizpulse-api/src/internal/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, session *models.Session) error
	FindActiveByToken(ctx context.Context, token string, now time.Time) (*models.Session, error)
	DeleteByToken(ctx context.Context, token string) (*models.Session, error)
	EnsureIndexes(ctx context.Context) error
}

type repository struct {
	collection *mongo.Collection
}

func NewSessionRepository(db *clients.MongoDB, collectionName string) Repository {
	collection := db.Database.Collection(collectionName)
	return &repository{collection: collection}
}

// Create stores a new session. A token the provider hands out again
// replaces its existing row, so one token never maps to two sessions.
func (r *repository) Create(ctx context.Context, session *models.Session) error {
	_, err := r.collection.InsertOne(ctx, session)
	if err == nil {
		return nil
	}

	if mongo.IsDuplicateKeyError(err) {
		filter := bson.M{"session_token": session.SessionToken}
		if _, err := r.collection.ReplaceOne(ctx, filter, session); err != nil {
			logrus.WithError(err).WithField("user_id", session.UserID).Error("Failed to renew session")
			return models.ErrSessionCreating
		}
		logrus.WithField("user_id", session.UserID).Debug("Session token reissued, row renewed")
		return nil
	}

	logrus.WithError(err).WithField("user_id", session.UserID).Error("Failed to insert session")
	return models.ErrSessionCreating
}

// FindActiveByToken matches unknown and expired tokens with one query; both
// come back as models.ErrInvalidOrExpiredSession.
func (r *repository) FindActiveByToken(ctx context.Context, token string, now time.Time) (*models.Session, error) {
	var session models.Session
	filter := bson.M{
		"session_token": token,
		"expires_at":    bson.M{"$gt": now},
	}

	err := r.collection.FindOne(ctx, filter).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrInvalidOrExpiredSession
		}
		logrus.WithError(err).Error("Failed to find session")
		return nil, models.ErrDatabaseQuery
	}

	return &session, nil
}

// DeleteByToken removes the session and returns it, or nil when nothing matched.
func (r *repository) DeleteByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := r.collection.FindOneAndDelete(ctx, bson.M{"session_token": token}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logrus.WithError(err).Error("Failed to delete session")
		return nil, models.ErrDatabaseDelete
	}
	return &session, nil
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, indexModels())
	return err
}

func indexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "session_token", Value: 1}}, Options: options.Index().SetName("session_token").SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetName("user_id")},
	}
}

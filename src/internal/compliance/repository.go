package compliance

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
	Create(ctx context.Context, report *Report) error
	ListByUser(ctx context.Context, userID string, limit int64) ([]Report, error)
	EnsureIndexes(ctx context.Context) error
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(db *clients.MongoDB, collectionName string) Repository {
	return &repository{collection: db.Database.Collection(collectionName)}
}

func (r *repository) Create(ctx context.Context, report *Report) error {
	if _, err := r.collection.InsertOne(ctx, report); err != nil {
		logrus.WithError(err).WithField("user_id", report.UserID).Error("Failed to insert compliance report")
		return models.ErrDatabaseInsert
	}
	return nil
}

func (r *repository) ListByUser(ctx context.Context, userID string, limit int64) ([]Report, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to query compliance history")
		return nil, models.ErrDatabaseQuery
	}

	reports := make([]Report, 0)
	if err := cursor.All(ctx, &reports); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to decode compliance history")
		return nil, models.ErrDatabaseQuery
	}
	return reports, nil
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}

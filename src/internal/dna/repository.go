package dna

import (
	"context"
	"errors"
	"fmt"

	"bizpulse-api/src/clients"
	"bizpulse-api/src/internal/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, profile *BusinessDNA) error
	FindLatestByUser(ctx context.Context, userID string) (*BusinessDNA, error)
	EnsureIndexes(ctx context.Context) error
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(db *clients.MongoDB, collectionName string) Repository {
	return &repository{collection: db.Database.Collection(collectionName)}
}

func (r *repository) Create(ctx context.Context, profile *BusinessDNA) error {
	if _, err := r.collection.InsertOne(ctx, profile); err != nil {
		logrus.WithError(err).WithField("user_id", profile.UserID).Error("Failed to insert business DNA")
		return models.ErrDatabaseInsert
	}
	return nil
}

func (r *repository) FindLatestByUser(ctx context.Context, userID string) (*BusinessDNA, error) {
	var profile BusinessDNA
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: business DNA for user %s", models.ErrNotFound, userID)
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to find business DNA")
		return nil, models.ErrDatabaseQuery
	}
	return &profile, nil
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

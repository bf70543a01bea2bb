package persona

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
	Create(ctx context.Context, persona *ClientPersona) error
	ListByUser(ctx context.Context, userID string, limit int64) ([]ClientPersona, error)
	DeleteByID(ctx context.Context, id string) (*ClientPersona, error)
	EnsureIndexes(ctx context.Context) error
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(db *clients.MongoDB, collectionName string) Repository {
	return &repository{collection: db.Database.Collection(collectionName)}
}

func (r *repository) Create(ctx context.Context, persona *ClientPersona) error {
	if _, err := r.collection.InsertOne(ctx, persona); err != nil {
		logrus.WithError(err).WithField("user_id", persona.UserID).Error("Failed to insert persona")
		return models.ErrDatabaseInsert
	}
	return nil
}

func (r *repository) ListByUser(ctx context.Context, userID string, limit int64) ([]ClientPersona, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, options.Find().SetLimit(limit))
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to query personas")
		return nil, models.ErrDatabaseQuery
	}

	personas := make([]ClientPersona, 0)
	if err := cursor.All(ctx, &personas); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to decode personas")
		return nil, models.ErrDatabaseQuery
	}
	return personas, nil
}

// DeleteByID returns models.ErrNotFound when no persona has the id.
func (r *repository) DeleteByID(ctx context.Context, id string) (*ClientPersona, error) {
	var persona ClientPersona
	err := r.collection.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&persona)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: persona %s", models.ErrNotFound, id)
		}
		logrus.WithError(err).WithField("persona_id", id).Error("Failed to delete persona")
		return nil, models.ErrDatabaseDelete
	}
	return &persona, nil
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	})
	return err
}

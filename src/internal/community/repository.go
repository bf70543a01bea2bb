package community

import (
	"context"

	"bizpulse-api/src/clients"
	"bizpulse-api/src/internal/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository interface {
	CreateMany(ctx context.Context, insights []Insight) error
	EnsureIndexes(ctx context.Context) error
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(db *clients.MongoDB, collectionName string) Repository {
	return &repository{collection: db.Database.Collection(collectionName)}
}

func (r *repository) CreateMany(ctx context.Context, insights []Insight) error {
	if len(insights) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(insights))
	for _, insight := range insights {
		docs = append(docs, insight)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		logrus.WithError(err).WithField("count", len(docs)).Error("Failed to insert community insights")
		return models.ErrDatabaseInsert
	}
	return nil
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}

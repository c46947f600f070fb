// File: database/repository/organizer/organizer_mongo.go
package organizerRepo

import (
	"context"
	"fmt"
	"time"

	"meetly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoOrganizerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *mongoOrganizerRepo) Create(ctx context.Context, organizer *models.Organizer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, organizer); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create organizer: %w", err)
	}
	return nil
}

func (r *mongoOrganizerRepo) GetByID(ctx context.Context, id string) (*models.Organizer, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoOrganizerRepo) GetByEmail(ctx context.Context, email string) (*models.Organizer, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoOrganizerRepo) findOne(ctx context.Context, filter bson.M) (*models.Organizer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var organizer models.Organizer
	err := r.coll.FindOne(ctx, filter).Decode(&organizer)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organizer: %w", err)
	}
	return &organizer, nil
}

// File: database/repository/settings/settings_mongo.go
package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"meetly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoSettingsRepo) Get(ctx context.Context) (*models.OrganizerSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.OrganizerSettings
	err := r.coll.FindOne(ctx, bson.M{"id": models.SettingsID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organizer settings: %w", err)
	}
	return &settings, nil
}

// Save replaces the singleton settings document, creating it on first save.
func (r *mongoSettingsRepo) Save(ctx context.Context, settings *models.OrganizerSettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	settings.ID = models.SettingsID
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": models.SettingsID}, settings, opts)
	if err != nil {
		return fmt.Errorf("failed to save organizer settings: %w", err)
	}
	return nil
}

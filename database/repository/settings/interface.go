// File: database/repository/settings/interface.go
package settingsRepo

import (
	"context"
	"errors"

	"meetly/config"
	"meetly/database"
	"meetly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when the organizer settings document does not exist
// yet (a fresh deployment before the first save).
var ErrNotFound = errors.New("organizer settings not found")

// SettingsRepository persists the singleton organizer configuration.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.OrganizerSettings, error)
	Save(ctx context.Context, settings *models.OrganizerSettings) error
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a new MongoDB SettingsRepository.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoSettingsRepo{
		coll: db.Collection("organizer_settings"),
	}
}

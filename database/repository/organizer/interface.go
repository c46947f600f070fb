// File: database/repository/organizer/interface.go
package organizerRepo

import (
	"context"
	"errors"

	"meetly/config"
	"meetly/database"
	"meetly/models"
	"meetly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when no organizer account matches the lookup.
	ErrNotFound = errors.New("organizer not found")
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("organizer email already registered")
)

// OrganizerRepository persists organizer dashboard accounts.
type OrganizerRepository interface {
	Create(ctx context.Context, organizer *models.Organizer) error
	GetByID(ctx context.Context, id string) (*models.Organizer, error)
	GetByEmail(ctx context.Context, email string) (*models.Organizer, error)
}

type mongoOrganizerRepo struct {
	coll *mongo.Collection
}

// NewMongoOrganizerRepo constructs a new MongoDB OrganizerRepository.
func NewMongoOrganizerRepo() OrganizerRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoOrganizerRepo{
		coll: db.Collection("organizers"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("failed to ensure organizer indexes", zap.Error(err))
	}
	return repo
}

// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"meetly/config"
	"meetly/database"
	"meetly/models"
	"meetly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrSlotTaken is returned by the conflict-guarded write operations when a
// non-deleted booking already occupies part of the requested interval.
var ErrSlotTaken = errors.New("slot already booked")

// ErrNotFound is returned when a booking does not exist or was soft-deleted.
var ErrNotFound = errors.New("booking not found")

// BookingRepository is the persistence boundary for bookings. CreateIfFree and
// RescheduleIfFree run the conflict check and the write as one atomic unit, so
// two concurrent requests for overlapping intervals can never both succeed.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListActive(ctx context.Context) ([]models.Booking, error)
	ListOverlapping(ctx context.Context, start, end time.Time) ([]models.Booking, error)
	CreateIfFree(ctx context.Context, booking *models.Booking) error
	RescheduleIfFree(ctx context.Context, id string, start, end time.Time, inviteeName, inviteeEmail string) (*models.Booking, error)
	SoftDelete(ctx context.Context, id string, deletedAt time.Time) error
	ListDueReminders(ctx context.Context, flagField string, from, to time.Time) ([]models.Booking, error)
	MarkReminded(ctx context.Context, id, flagField string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Error("failed to ensure booking indexes", zap.Error(err))
	}
	return repo
}

// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on booking ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Overlap queries scan by interval bounds
		{
			Keys:    bson.D{{Key: "is_deleted", Value: 1}, {Key: "start_time", Value: 1}, {Key: "end_time", Value: 1}},
			Options: options.Index().SetName("active_interval_idx"),
		},
		// Backstop for the transactional conflict check: among non-deleted
		// bookings, an exact (start_time, end_time) pair may exist only once.
		{
			Keys: bson.D{{Key: "start_time", Value: 1}, {Key: "end_time", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_interval").
				SetPartialFilterExpression(bson.M{"is_deleted": false}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}

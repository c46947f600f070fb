// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"meetly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// overlapFilter matches non-deleted bookings whose [start_time, end_time)
// interval intersects [start, end). excludeID is set by reschedule so a
// booking does not conflict with itself.
func overlapFilter(start, end time.Time, excludeID string) bson.M {
	filter := bson.M{
		"is_deleted": false,
		"start_time": bson.M{"$lt": end},
		"end_time":   bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

// ListOverlapping returns the non-deleted bookings intersecting [start, end),
// in ascending start order. This feeds the availability generator.
func (r *mongoBookingRepo) ListOverlapping(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, overlapFilter(start, end, ""), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping bookings: %w", err)
	}
	return bookings, nil
}

// ListDueReminders returns non-deleted bookings starting within [from, to]
// whose reminder flag (flagField) has not been set yet.
func (r *mongoBookingRepo) ListDueReminders(ctx context.Context, flagField string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"is_deleted": false,
		flagField:    false,
		"start_time": bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode due reminders: %w", err)
	}
	return bookings, nil
}

// MarkReminded sets the given reminder flag on a booking.
func (r *mongoBookingRepo) MarkReminded(ctx context.Context, id, flagField string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{flagField: true}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark booking %s reminded: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"meetly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfFree inserts the booking only if no non-deleted booking overlaps its
// interval. The conflict check and the insert run inside one Mongo session
// transaction so that two concurrent requests for the same interval cannot
// both observe "free" and both commit. Returns ErrSlotTaken on conflict with
// no mutation performed.
func (r *mongoBookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		err := r.coll.FindOne(sc, overlapFilter(booking.StartTime, booking.EndTime, "")).Err()
		if err == nil {
			return ErrSlotTaken
		}
		if err != mongo.ErrNoDocuments {
			return fmt.Errorf("conflict check failed: %w", err)
		}

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			// The partial unique index on (start_time, end_time) is the
			// backstop for exact-duplicate intervals racing past the check.
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	return r.runTxn(ctx, sess, txnFn)
}

// RescheduleIfFree moves an existing booking to a new interval, preserving its
// identity. Invitee fields are kept unless a non-empty override is supplied.
// The lookup, the conflict check (excluding the booking itself) and the update
// execute in one transaction. Reminder flags are reset because the interval
// changed and reminders must fire again.
func (r *mongoBookingRepo) RescheduleIfFree(ctx context.Context, id string, start, end time.Time, inviteeName, inviteeEmail string) (*models.Booking, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var updated models.Booking
	txnFn := func(sc mongo.SessionContext) error {
		var current models.Booking
		err := r.coll.FindOne(sc, bson.M{"id": id, "is_deleted": false}).Decode(&current)
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load booking %s: %w", id, err)
		}

		err = r.coll.FindOne(sc, overlapFilter(start, end, id)).Err()
		if err == nil {
			return ErrSlotTaken
		}
		if err != mongo.ErrNoDocuments {
			return fmt.Errorf("conflict check failed: %w", err)
		}

		set := bson.M{
			"start_time":        start,
			"end_time":          end,
			"reminded_1h":       false,
			"reminded_at_start": false,
		}
		if inviteeName != "" {
			set["invitee_name"] = inviteeName
		}
		if inviteeEmail != "" {
			set["invitee_email"] = inviteeEmail
		}
		res, err := r.coll.UpdateOne(sc, bson.M{"id": id, "is_deleted": false}, bson.M{"$set": set})
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("update booking interval failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}

		updated = current
		updated.StartTime = start
		updated.EndTime = end
		updated.Reminded1Hour = false
		updated.RemindedAtStart = false
		if inviteeName != "" {
			updated.InviteeName = inviteeName
		}
		if inviteeEmail != "" {
			updated.InviteeEmail = inviteeEmail
		}
		return nil
	}

	if err := r.runTxn(ctx, sess, txnFn); err != nil {
		return nil, err
	}
	return &updated, nil
}

// runTxn executes fn inside a session transaction, aborting on error.
func (r *mongoBookingRepo) runTxn(ctx context.Context, sess mongo.Session, fn func(mongo.SessionContext) error) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return fmt.Errorf("could not start transaction: %w", err)
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

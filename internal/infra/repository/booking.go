package repository

import (
	"context"
	"encoding/json"
	"errors"

	"parkease/internal/domain/booking"
	"parkease/internal/infra"
	"parkease/internal/infra/kv"

	"github.com/google/uuid"
)

// BookingRepository owns the per-user booking lists. Append and Update are
// compare-and-swap loops keyed on the user's list, which serializes concurrent
// mutations from the same user (two tabs extending at once must accumulate,
// not overwrite).
type BookingRepository struct {
	store kv.Store
}

func NewBookingRepository(store kv.Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]booking.Booking, error) {
	entry, err := r.store.Get(ctx, bookingsKey(userID))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return []booking.Booking{}, nil
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read bookings", err)
	}

	var bookings []booking.Booking
	if err := json.Unmarshal(entry.Value, &bookings); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt booking record", err)
	}
	return bookings, nil
}

func (r *BookingRepository) Append(ctx context.Context, userID uuid.UUID, b booking.Booking) error {
	for range maxCASRetries {
		var bookings []booking.Booking
		version := kv.NoVersion

		entry, err := r.store.Get(ctx, bookingsKey(userID))
		switch {
		case err == nil:
			if err := json.Unmarshal(entry.Value, &bookings); err != nil {
				return infra.WrapRepoErr(infra.KindDBFailure, "corrupt booking record", err)
			}
			version = entry.Version
		case errors.Is(err, kv.ErrKeyNotFound):
			// first booking for this user
		default:
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to read bookings", err)
		}

		bookings = append(bookings, b)
		data, err := json.Marshal(bookings)
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode bookings", err)
		}

		err = r.store.CompareAndSwap(ctx, bookingsKey(userID), version, data)
		if err == nil {
			return nil
		}
		if !errors.Is(err, kv.ErrVersionMismatch) {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to write bookings", err)
		}
	}
	return infra.WrapRepoErr(infra.KindDBFailure, "booking append contention exceeded retry budget", nil)
}

// Update applies mutate to the caller's booking with the given id and writes
// the whole list back in one compare-and-swap, so no partial update can land.
// A booking owned by someone else is indistinguishable from a missing one.
func (r *BookingRepository) Update(
	ctx context.Context,
	userID uuid.UUID,
	bookingID string,
	mutate func(*booking.Booking) error,
) (*booking.Booking, error) {
	for range maxCASRetries {
		entry, err := r.store.Get(ctx, bookingsKey(userID))
		if err != nil {
			if errors.Is(err, kv.ErrKeyNotFound) {
				return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
			}
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read bookings", err)
		}

		var bookings []booking.Booking
		if err := json.Unmarshal(entry.Value, &bookings); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt booking record", err)
		}

		idx := -1
		for i := range bookings {
			if bookings[i].ID == bookingID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
		}

		if err := mutate(&bookings[idx]); err != nil {
			return nil, err
		}

		data, err := json.Marshal(bookings)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to encode bookings", err)
		}

		err = r.store.CompareAndSwap(ctx, bookingsKey(userID), entry.Version, data)
		if err == nil {
			updated := bookings[idx]
			return &updated, nil
		}
		if !errors.Is(err, kv.ErrVersionMismatch) {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to write bookings", err)
		}
	}
	return nil, infra.WrapRepoErr(infra.KindDBFailure, "booking update contention exceeded retry budget", nil)
}

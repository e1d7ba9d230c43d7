//go:build unit

package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"parkease/internal/domain/booking"
	"parkease/internal/infra"
	"parkease/internal/infra/kv"
	"parkease/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(userID uuid.UUID, id string) booking.Booking {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return booking.Booking{
		ID:        id,
		UserID:    userID,
		ParkingID: "park1",
		SlotID:    "park1_slot_1",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Amount:    100,
		Status:    booking.StatusActive,
		QRCode:    "{}",
		CreatedAt: start.Add(-5 * time.Minute),
	}
}

func TestBookingRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingRepository(kv.NewMemoryStore())

	t.Run("empty for an unknown user", func(t *testing.T) {
		bookings, err := repo.ListByUser(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, bookings)
	})
}

func TestBookingRepository_Append(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("first append creates the list", func(t *testing.T) {
		repo := repository.NewBookingRepository(kv.NewMemoryStore())

		require.NoError(t, repo.Append(ctx, userID, newTestBooking(userID, "booking_1_aaaa")))

		bookings, err := repo.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "booking_1_aaaa", bookings[0].ID)
	})

	t.Run("appends preserve order", func(t *testing.T) {
		repo := repository.NewBookingRepository(kv.NewMemoryStore())

		require.NoError(t, repo.Append(ctx, userID, newTestBooking(userID, "booking_1_aaaa")))
		require.NoError(t, repo.Append(ctx, userID, newTestBooking(userID, "booking_2_aaaa")))

		bookings, err := repo.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, bookings, 2)
		assert.Equal(t, "booking_1_aaaa", bookings[0].ID)
		assert.Equal(t, "booking_2_aaaa", bookings[1].ID)
	})

	t.Run("lists are isolated per user", func(t *testing.T) {
		repo := repository.NewBookingRepository(kv.NewMemoryStore())
		otherID := uuid.New()

		require.NoError(t, repo.Append(ctx, userID, newTestBooking(userID, "booking_1_aaaa")))

		bookings, err := repo.ListByUser(ctx, otherID)
		require.NoError(t, err)
		assert.Empty(t, bookings)
	})

	t.Run("concurrent appends all land", func(t *testing.T) {
		repo := repository.NewBookingRepository(kv.NewMemoryStore())

		const writers = 8
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				b := newTestBooking(userID, booking.NewID(time.Now().Add(time.Duration(i)*time.Millisecond), userID))
				assert.NoError(t, repo.Append(ctx, userID, b))
			}(i)
		}
		wg.Wait()

		bookings, err := repo.ListByUser(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, bookings, writers)
	})
}

func TestBookingRepository_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("mutation is persisted and returned", func(t *testing.T) {
		repo := repository.NewBookingRepository(kv.NewMemoryStore())
		require.NoError(t, repo.Append(ctx, userID, newTestBooking(userID, "booking_1_aaaa")))

		updated, err := repo.Update(ctx, userID, "booking_1_aaaa", func(b *booking.Booking) error {
			return b.Extend(3, 150)
		})
		require.NoError(t, err)
		assert.Equal(t, int64(250), updated.Amount)

		bookings, err := repo.ListByUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(250), bookings[0].Amount)
		assert.Equal(t, time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC), bookings[0].EndTime)
	})

	t.Run("unknown booking is NotFound", func(t *testing.T) {
		repo := repository.NewBookingRepository(kv.NewMemoryStore())
		require.NoError(t, repo.Append(ctx, userID, newTestBooking(userID, "booking_1_aaaa")))

		_, err := repo.Update(ctx, userID, "booking_9_zzzz", func(*booking.Booking) error { return nil })
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("another user's booking is NotFound", func(t *testing.T) {
		repo := repository.NewBookingRepository(kv.NewMemoryStore())
		require.NoError(t, repo.Append(ctx, userID, newTestBooking(userID, "booking_1_aaaa")))

		_, err := repo.Update(ctx, uuid.New(), "booking_1_aaaa", func(*booking.Booking) error { return nil })
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("mutate error aborts the write", func(t *testing.T) {
		repo := repository.NewBookingRepository(kv.NewMemoryStore())
		require.NoError(t, repo.Append(ctx, userID, newTestBooking(userID, "booking_1_aaaa")))

		_, err := repo.Update(ctx, userID, "booking_1_aaaa", func(b *booking.Booking) error {
			return b.Extend(0, 0)
		})
		assert.ErrorIs(t, err, booking.ErrInvalidHours)

		bookings, err := repo.ListByUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), bookings[0].Amount)
	})

	t.Run("concurrent extensions accumulate", func(t *testing.T) {
		repo := repository.NewBookingRepository(kv.NewMemoryStore())
		require.NoError(t, repo.Append(ctx, userID, newTestBooking(userID, "booking_1_aaaa")))

		const writers = 4
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Update(ctx, userID, "booking_1_aaaa", func(b *booking.Booking) error {
					return b.Extend(1, 50)
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		bookings, err := repo.ListByUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(100+writers*50), bookings[0].Amount)
		assert.Equal(t, time.Date(2024, 1, 1, 11+writers, 0, 0, 0, time.UTC), bookings[0].EndTime)
	})
}

//go:build unit

package booking_test

import (
	"encoding/json"
	"testing"
	"time"

	"parkease/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	userID := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")
	createdAt := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	id := booking.NewID(createdAt, userID)

	assert.Equal(t, "booking_1704099600000_a1b2c3d4", id)
}

func TestValidateWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		end   time.Time
		errIs error
	}{
		{name: "end after start OK", end: start.Add(2 * time.Hour)},
		{name: "end equals start NG", end: start, errIs: booking.ErrInvalidTimeWindow},
		{name: "end before start NG", end: start.Add(-time.Hour), errIs: booking.ErrInvalidTimeWindow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := booking.ValidateWindow(start, tc.end)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAmountFor(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		duration time.Duration
		price    int64
		expected int64
	}{
		{name: "two whole hours", duration: 2 * time.Hour, price: 50, expected: 100},
		{name: "partial hour rounds up", duration: 90 * time.Minute, price: 50, expected: 100},
		{name: "single hour", duration: time.Hour, price: 35, expected: 35},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, booking.AmountFor(tc.price, start, start.Add(tc.duration)))
		})
	}
}

func TestExtend(t *testing.T) {
	newBooking := func() *booking.Booking {
		return &booking.Booking{
			ID:        "booking_1704099600000_a1b2c3d4",
			StartTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
			Amount:    100,
			Status:    booking.StatusActive,
		}
	}

	t.Run("accumulates end time and amount", func(t *testing.T) {
		b := newBooking()

		require.NoError(t, b.Extend(3, 150))

		assert.Equal(t, time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC), b.EndTime)
		assert.Equal(t, int64(250), b.Amount)
	})

	t.Run("second extension keeps accumulating", func(t *testing.T) {
		b := newBooking()

		require.NoError(t, b.Extend(1, 50))
		require.NoError(t, b.Extend(2, 100))

		assert.Equal(t, time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC), b.EndTime)
		assert.Equal(t, int64(250), b.Amount)
	})

	t.Run("rolls over the day boundary", func(t *testing.T) {
		b := newBooking()
		b.EndTime = time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC)

		require.NoError(t, b.Extend(2, 100))

		assert.Equal(t, time.Date(2024, 2, 1, 1, 0, 0, 0, time.UTC), b.EndTime)
	})

	t.Run("rejects non-positive hours", func(t *testing.T) {
		b := newBooking()
		assert.ErrorIs(t, b.Extend(0, 50), booking.ErrInvalidHours)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		b := newBooking()
		assert.ErrorIs(t, b.Extend(1, -1), booking.ErrNegativeAmount)
	})
}

func TestIsLive(t *testing.T) {
	end := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		status   booking.Status
		now      time.Time
		expected bool
	}{
		{name: "active before end is live", status: booking.StatusActive, now: end.Add(-time.Minute), expected: true},
		{name: "active past end is not live", status: booking.StatusActive, now: end.Add(time.Minute), expected: false},
		{name: "completed wins over the clock", status: booking.StatusCompleted, now: end.Add(-time.Hour), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := &booking.Booking{Status: tc.status, EndTime: end}
			assert.Equal(t, tc.expected, b.IsLive(tc.now))
		})
	}
}

func TestIssue(t *testing.T) {
	issuer := booking.NewIssuer()
	issuedAt := time.Date(2024, 1, 1, 8, 55, 0, 0, time.UTC)
	b := &booking.Booking{
		ID:        "booking_1704099600000_a1b2c3d4",
		UserID:    uuid.New(),
		ParkingID: "park1",
		SlotID:    "park1_slot_7",
		StartTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		Amount:    100,
	}

	raw, err := issuer.Issue(b, issuedAt)
	require.NoError(t, err)

	var token booking.Token
	require.NoError(t, json.Unmarshal([]byte(raw), &token))

	assert.Equal(t, b.ID, token.BookingID)
	assert.Equal(t, b.UserID, token.UserID)
	assert.Equal(t, b.ParkingID, token.ParkingID)
	assert.Equal(t, b.SlotID, token.SlotID)
	assert.Equal(t, b.Amount, token.Amount)
	assert.True(t, token.IssuedAt.Equal(issuedAt))
	assert.Contains(t, token.Verification, b.ID+"_")

	// Nonce makes every issuance distinct
	raw2, err := issuer.Issue(b, issuedAt)
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
}

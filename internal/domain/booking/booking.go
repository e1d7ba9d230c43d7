package booking

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeWindow = errors.New("end time must be after start time")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrInvalidHours      = errors.New("additional hours must be positive")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted:
		return true
	default:
		return false
	}
}

// Booking is a user's reservation of one slot for a time window. Field names
// follow the persisted JSON layout. QRCode holds the verification token issued
// at creation; it is never re-issued, so after an extension it still encodes
// the original end time (known limitation, kept intentionally).
type Booking struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	ParkingID string    `json:"parkingId"`
	SlotID    string    `json:"slotId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Amount    int64     `json:"amount"`
	Status    Status    `json:"status"`
	QRCode    string    `json:"qrCode"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewID builds a time-ordered booking id carrying a short prefix of the owning
// user id. Unique in practice, not cryptographically guaranteed.
func NewID(createdAt time.Time, userID uuid.UUID) string {
	return fmt.Sprintf("booking_%d_%s", createdAt.UnixMilli(), userID.String()[:8])
}

// ValidateWindow rejects empty or inverted time windows.
func ValidateWindow(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidTimeWindow
	}
	return nil
}

// BillableHours rounds the window duration up to whole hours.
func BillableHours(start, end time.Time) int64 {
	return int64(math.Ceil(end.Sub(start).Hours()))
}

// AmountFor computes the charge for a window at the facility's hourly price.
func AmountFor(pricePerHour int64, start, end time.Time) int64 {
	return pricePerHour * BillableHours(start, end)
}

// Extend pushes the end time out by additionalHours and accumulates the
// additional charge. The stored amount must never be overwritten, only added to.
func (b *Booking) Extend(additionalHours int, additionalAmount int64) error {
	if additionalHours <= 0 {
		return ErrInvalidHours
	}
	if additionalAmount < 0 {
		return ErrNegativeAmount
	}
	b.EndTime = b.EndTime.Add(time.Duration(additionalHours) * time.Hour)
	b.Amount += additionalAmount
	return nil
}

// IsLive reports whether the booking is still usable: the explicit status wins
// for terminal states, the wall clock governs expiry.
func (b *Booking) IsLive(now time.Time) bool {
	return b.Status == StatusActive && now.Before(b.EndTime)
}

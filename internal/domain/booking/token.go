package booking

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Token is the verification payload bound to a booking at creation time. It is
// rendered as an opaque JSON string; only an external gate reader parses it.
type Token struct {
	BookingID    string    `json:"bookingId"`
	UserID       uuid.UUID `json:"userId"`
	ParkingID    string    `json:"parkingId"`
	SlotID       string    `json:"slotId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Amount       int64     `json:"amount"`
	IssuedAt     time.Time `json:"issuedAt"`
	Verification string    `json:"verification"`
}

// Issuer produces single-use verification tokens. Issuance happens exactly
// once per booking; extension does not re-issue.
type Issuer struct{}

func NewIssuer() *Issuer {
	return &Issuer{}
}

func (i *Issuer) Issue(b *Booking, issuedAt time.Time) (string, error) {
	token := Token{
		BookingID:    b.ID,
		UserID:       b.UserID,
		ParkingID:    b.ParkingID,
		SlotID:       b.SlotID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Amount:       b.Amount,
		IssuedAt:     issuedAt,
		Verification: fmt.Sprintf("%s_%d_%s", b.ID, issuedAt.UnixMilli(), newNonce()),
	}

	data, err := json.Marshal(token)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func newNonce() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a UUID
		return uuid.NewString()
	}
	return hex.EncodeToString(buf)
}

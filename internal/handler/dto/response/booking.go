package response

import (
	"time"

	"parkease/internal/domain/booking"
	"parkease/internal/usecase"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	ParkingID string    `json:"parkingId"`
	SlotID    string    `json:"slotId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	QRCode    string    `json:"qrCode"`
	CreatedAt time.Time `json:"createdAt"`
	Live      bool      `json:"live"`
}

type CreateBookingResponse struct {
	Booking BookingResponse `json:"booking"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type PaymentResponse struct {
	Payment *usecase.Payment `json:"payment"`
}

func FromBooking(b *booking.Booking, live bool) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		ParkingID: b.ParkingID,
		SlotID:    b.SlotID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Amount:    b.Amount,
		Status:    string(b.Status),
		QRCode:    b.QRCode,
		CreatedAt: b.CreatedAt,
		Live:      live,
	}
}

func FromBookingViews(views []usecase.BookingView) BookingListResponse {
	items := make([]BookingResponse, 0, len(views))
	for i := range views {
		items = append(items, FromBooking(&views[i].Booking, views[i].Live))
	}
	return BookingListResponse{Bookings: items}
}

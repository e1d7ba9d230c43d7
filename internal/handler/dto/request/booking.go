package request

import "time"

type CreateBookingRequest struct {
	ParkingID string    `json:"parkingId" binding:"required"`
	SlotID    string    `json:"slotId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Amount    int64     `json:"amount" binding:"min=0"`
}

type ExtendBookingRequest struct {
	BookingID       string `json:"bookingId" binding:"required"`
	AdditionalHours int    `json:"additionalHours" binding:"required,min=1"`
	Amount          int64  `json:"amount" binding:"min=0"`
}

type PaymentRequest struct {
	Amount int64  `json:"amount" binding:"required,min=1"`
	Type   string `json:"type" binding:"omitempty,oneof=booking extension"`
}

package response

import "parkease/internal/domain/parking"

// Facility and slot records are persisted in their wire shape, so the list
// responses wrap the domain types directly.

type ParkingsResponse struct {
	Parkings []parking.Facility `json:"parkings"`
}

type SlotsResponse struct {
	Slots []parking.Slot `json:"slots"`
}

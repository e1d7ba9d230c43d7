package parking

import "fmt"

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

func (s SlotStatus) IsValid() bool {
	switch s {
	case SlotAvailable, SlotBooked:
		return true
	default:
		return false
	}
}

// Facility is a parking location with a fixed slot inventory. Immutable after
// seeding; field names follow the persisted JSON layout.
type Facility struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	TotalSlots   int     `json:"totalSlots"`
	PricePerHour int64   `json:"pricePerHour"`
}

// Slot is one physical parking space, the unit of reservation. Status is
// mutated only by the slot allocator.
type Slot struct {
	ID         string     `json:"id"`
	ParkingID  string     `json:"parkingId"`
	SlotNumber int        `json:"slotNumber"`
	Status     SlotStatus `json:"status"`
}

// SlotID derives the slot identifier from the facility id and ordinal.
func SlotID(facilityID string, ordinal int) string {
	return fmt.Sprintf("%s_slot_%d", facilityID, ordinal)
}

// BuildSlots creates the full inventory for a facility, ordinals 1..TotalSlots,
// all available.
func BuildSlots(f Facility) []Slot {
	slots := make([]Slot, 0, f.TotalSlots)
	for i := 1; i <= f.TotalSlots; i++ {
		slots = append(slots, Slot{
			ID:         SlotID(f.ID, i),
			ParkingID:  f.ID,
			SlotNumber: i,
			Status:     SlotAvailable,
		})
	}
	return slots
}

// SeedCatalog returns the seeded facility set.
func SeedCatalog() []Facility {
	return []Facility{
		{
			ID:           "park1",
			Name:         "Select City Walk Mall",
			Address:      "Saket, New Delhi",
			Lat:          28.5244,
			Lng:          77.2066,
			TotalSlots:   50,
			PricePerHour: 50,
		},
		{
			ID:           "park2",
			Name:         "Phoenix Market City",
			Address:      "Kurla, Mumbai",
			Lat:          19.0877,
			Lng:          72.8901,
			TotalSlots:   100,
			PricePerHour: 60,
		},
		{
			ID:           "park3",
			Name:         "Brigade Road Parking",
			Address:      "MG Road, Bangalore",
			Lat:          12.9716,
			Lng:          77.5946,
			TotalSlots:   40,
			PricePerHour: 40,
		},
		{
			ID:           "park4",
			Name:         "Anna Nagar Tower Park",
			Address:      "Anna Nagar, Chennai",
			Lat:          13.0878,
			Lng:          80.2088,
			TotalSlots:   30,
			PricePerHour: 35,
		},
	}
}

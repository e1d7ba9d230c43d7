package repository

import "github.com/google/uuid"

// Persisted namespace layout: the facility list, the seed marker, and two
// growing namespaces (slots per facility, bookings per user).
const (
	keyParkings   = "parkings"
	keySeedMarker = "parkings_initialized"

	slotsKeyPrefix    = "slots_"
	bookingsKeyPrefix = "user_bookings_"
	usersKeyPrefix    = "user_"
)

// maxCASRetries bounds every compare-and-swap loop; hitting it means sustained
// write contention on one key and surfaces as a store failure.
const maxCASRetries = 16

func slotsKey(facilityID string) string {
	return slotsKeyPrefix + facilityID
}

func bookingsKey(userID uuid.UUID) string {
	return bookingsKeyPrefix + userID.String()
}

func userKey(email string) string {
	return usersKeyPrefix + email
}

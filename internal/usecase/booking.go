package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parkease/internal/domain/booking"
	"parkease/internal/infra"
	"parkease/internal/pkg/clock"
	"parkease/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound      = errors.New("slot not found")
	ErrSlotAlreadyBooked = errors.New("slot already booked")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTimeWindow = errors.New("invalid time window")
	ErrAmountMismatch    = errors.New("amount does not match facility rate")
	ErrInvalidHours      = errors.New("additional hours must be positive")
	ErrStoreFailure      = errors.New("store operation failed")
)

type SlotAllocator interface {
	Reserve(ctx context.Context, facilityID, slotID string) error
}

type BookingRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]booking.Booking, error)
	Append(ctx context.Context, userID uuid.UUID, b booking.Booking) error
	Update(ctx context.Context, userID uuid.UUID, bookingID string, mutate func(*booking.Booking) error) (*booking.Booking, error)
}

type CreateBookingParams struct {
	FacilityID string
	SlotID     string
	StartTime  time.Time
	EndTime    time.Time
	Amount     int64
}

type ExtendBookingParams struct {
	BookingID       string
	AdditionalHours int
	Amount          int64
}

// BookingView is a booking plus the derived liveness predicate: the stored
// status wins for terminal states, the wall clock governs expiry.
type BookingView struct {
	booking.Booking
	Live bool
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, params CreateBookingParams) (*booking.Booking, error)
	ExtendBooking(ctx context.Context, userID uuid.UUID, params ExtendBookingParams) (*booking.Booking, error)
	ListMyBookings(ctx context.Context, userID uuid.UUID) ([]BookingView, error)
	GetMyBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	slotRepo    SlotAllocator
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	issuer      *booking.Issuer
	clk         clock.Clock
}

func NewBookingUseCase(
	slotRepo SlotAllocator,
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	issuer *booking.Issuer,
	clk clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		issuer:      issuer,
		clk:         clk,
	}
}

// CreateBooking reserves the slot first; only after the allocator accepts is a
// booking written, so a lost reservation race leaves the caller's ledger
// untouched. Retries with the same slot intentionally fail with
// ErrSlotAlreadyBooked: that is the double-booking guard, not an idempotency
// contract.
func (b *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	userID uuid.UUID,
	params CreateBookingParams,
) (*booking.Booking, error) {
	if err := booking.ValidateWindow(params.StartTime, params.EndTime); err != nil {
		return nil, ErrInvalidTimeWindow
	}

	facility, err := b.catalogRepo.FindFacility(ctx, params.FacilityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFacilityNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	expected := booking.AmountFor(facility.PricePerHour, params.StartTime, params.EndTime)
	if params.Amount != expected {
		return nil, ErrAmountMismatch
	}

	if err := b.slotRepo.Reserve(ctx, params.FacilityID, params.SlotID); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrSlotAlreadyBooked
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrSlotNotFound
		default:
			return nil, errs.Mark(err, ErrStoreFailure)
		}
	}

	now := b.clk.Now()
	record := booking.Booking{
		ID:        booking.NewID(now, userID),
		UserID:    userID,
		ParkingID: params.FacilityID,
		SlotID:    params.SlotID,
		StartTime: params.StartTime,
		EndTime:   params.EndTime,
		Amount:    expected,
		Status:    booking.StatusActive,
		CreatedAt: now,
	}

	token, err := b.issuer.Issue(&record, now)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	record.QRCode = token

	if err := b.bookingRepo.Append(ctx, userID, record); err != nil {
		// The slot stays booked: there is no release path, matching the
		// engine's no-recycling behavior.
		slog.Error("booking write failed after slot reservation",
			"booking_id", record.ID, "slot_id", record.SlotID, "error", err.Error())
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return &record, nil
}

// ExtendBooking accumulates onto the stored end time and amount under the
// ledger's per-user serialization. The verification token is not re-issued, so
// it keeps encoding the original window (known limitation, kept intentionally).
func (b *bookingUseCaseImpl) ExtendBooking(
	ctx context.Context,
	userID uuid.UUID,
	params ExtendBookingParams,
) (*booking.Booking, error) {
	if params.AdditionalHours <= 0 {
		return nil, ErrInvalidHours
	}

	existing, err := b.GetMyBooking(ctx, userID, params.BookingID)
	if err != nil {
		return nil, err
	}

	facility, err := b.catalogRepo.FindFacility(ctx, existing.ParkingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFacilityNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	additionalAmount := facility.PricePerHour * int64(params.AdditionalHours)
	if params.Amount != additionalAmount {
		return nil, ErrAmountMismatch
	}

	updated, err := b.bookingRepo.Update(ctx, userID, params.BookingID, func(rec *booking.Booking) error {
		return rec.Extend(params.AdditionalHours, additionalAmount)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, booking.ErrInvalidHours) || errors.Is(err, booking.ErrNegativeAmount) {
			return nil, ErrInvalidHours
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return updated, nil
}

func (b *bookingUseCaseImpl) ListMyBookings(ctx context.Context, userID uuid.UUID) ([]BookingView, error) {
	bookings, err := b.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	now := b.clk.Now()
	views := make([]BookingView, 0, len(bookings))
	for _, rec := range bookings {
		views = append(views, BookingView{
			Booking: rec,
			Live:    rec.IsLive(now),
		})
	}
	return views, nil
}

// GetMyBooking looks up a booking within the caller's own list only. A booking
// owned by another user is reported as not found, never as forbidden.
func (b *bookingUseCaseImpl) GetMyBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*booking.Booking, error) {
	bookings, err := b.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	for i := range bookings {
		if bookings[i].ID == bookingID {
			return &bookings[i], nil
		}
	}
	return nil, ErrBookingNotFound
}

package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/piresc/intercity/internal/utils"
	"github.com/piresc/intercity/services/bookings"
	"github.com/piresc/intercity/services/notifications"
)

// BookingUC implements bookings.BookingUC
type BookingUC struct {
	bookingRepo    bookings.BookingRepo
	publisher      notifications.EventPublisher
	commissionRate float64
}

// NewBookingUC creates a new booking usecase instance
func NewBookingUC(bookingRepo bookings.BookingRepo, publisher notifications.EventPublisher, cfg models.BookingConfig) *BookingUC {
	return &BookingUC{
		bookingRepo:    bookingRepo,
		publisher:      publisher,
		commissionRate: cfg.CommissionRate,
	}
}

// CreateBooking reserves seats for the caller on a scheduled trip
func (uc *BookingUC) CreateBooking(ctx context.Context, riderID string, req models.CreateBookingRequest) (*models.Booking, error) {
	const op = "createBooking"

	if req.SeatsBooked <= 0 {
		return nil, apperrors.Validation(op, "seats booked must be positive")
	}
	if (req.PickupLat == nil) != (req.PickupLng == nil) {
		return nil, apperrors.Validation(op, "pickup latitude and longitude must be given together")
	}
	if req.PickupLat != nil && !utils.ValidCoordinates(*req.PickupLat, *req.PickupLng) {
		return nil, apperrors.Validation(op, "pickup coordinates are out of range")
	}
	if !utils.IsUUID(req.TripID) {
		return nil, apperrors.NotFound(op, "trip")
	}

	check := func(trip *models.Trip) error {
		switch {
		case trip.DriverID == riderID:
			return apperrors.Validation(op, "drivers cannot book their own trip")
		case trip.Status != models.TripStatusScheduled:
			return apperrors.Validation(op, fmt.Sprintf("trip is %s and not open for booking", trip.Status))
		case trip.SeatsAvailable < req.SeatsBooked:
			return apperrors.Conflict(op, fmt.Sprintf("only %d seats available", trip.SeatsAvailable), nil)
		}
		return nil
	}

	booking, err := uc.bookingRepo.CreateBooking(ctx, &models.Booking{
		TripID:         req.TripID,
		RiderID:        riderID,
		SeatsBooked:    req.SeatsBooked,
		PickupLocation: req.PickupLocation,
		PickupLat:      req.PickupLat,
		PickupLng:      req.PickupLng,
	}, uc.commissionRate, check)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Booking created",
		logger.String("booking_id", booking.ID),
		logger.String("trip_id", booking.TripID),
		logger.Int("seats", booking.SeatsBooked),
		logger.Float64("total_amount", booking.TotalAmount))

	notifications.Notify(ctx, uc.publisher, models.NotificationEvent{
		UserID:   booking.TripDriverID,
		Title:    "New booking",
		Message:  fmt.Sprintf("A rider booked %d seat(s) on your trip", booking.SeatsBooked),
		Type:     models.NotificationBookingCreated,
		Metadata: map[string]interface{}{"booking_id": booking.ID, "trip_id": booking.TripID},
	})
	return booking, nil
}

// GetBooking returns a booking visible to its rider or the trip's driver
func (uc *BookingUC) GetBooking(ctx context.Context, userID, id string) (*models.Booking, error) {
	const op = "booking"

	if !utils.IsUUID(id) {
		return nil, apperrors.NotFound(op, "booking")
	}
	booking, err := uc.bookingRepo.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.RiderID != userID && booking.TripDriverID != userID {
		return nil, apperrors.NotOwner(op, "booking")
	}
	return booking, nil
}

// ListRiderBookings returns the caller's bookings
func (uc *BookingUC) ListRiderBookings(ctx context.Context, riderID string) ([]*models.Booking, error) {
	return uc.bookingRepo.ListBookingsByRider(ctx, riderID)
}

// ListTripBookings returns the bookings on one of the caller's trips
func (uc *BookingUC) ListTripBookings(ctx context.Context, driverID, tripID string) ([]*models.Booking, error) {
	const op = "tripBookings"

	if !utils.IsUUID(tripID) {
		return nil, apperrors.NotFound(op, "trip")
	}
	owner, err := uc.bookingRepo.TripDriverID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if owner != driverID {
		return nil, apperrors.NotOwner(op, "trip")
	}
	return uc.bookingRepo.ListBookingsByTrip(ctx, tripID)
}

// CancelBooking cancels one of the caller's pending or confirmed bookings
func (uc *BookingUC) CancelBooking(ctx context.Context, riderID, id string) (*models.Booking, error) {
	const op = "cancelBooking"

	if !utils.IsUUID(id) {
		return nil, apperrors.NotFound(op, "booking")
	}

	check := func(b *models.Booking) error {
		if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
			return apperrors.InvalidStateTransition(op, "booking", b.Status, models.BookingStatusCancelled)
		}
		return nil
	}

	booking, err := uc.bookingRepo.CancelBooking(ctx, id, riderID, check)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("trip_id", booking.TripID))

	notifications.Notify(ctx, uc.publisher, models.NotificationEvent{
		UserID:   booking.TripDriverID,
		Title:    "Booking cancelled",
		Message:  fmt.Sprintf("A rider cancelled %d seat(s) on your trip", booking.SeatsBooked),
		Type:     models.NotificationBookingCancelled,
		Metadata: map[string]interface{}{"booking_id": booking.ID, "trip_id": booking.TripID},
	})
	return booking, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/database"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/piresc/intercity/services/bookings"
)

const (
	bookingColumns = `id, trip_id, rider_id, seats_booked, total_amount, commission_amount, status,
		payment_status, pickup_location, pickup_lat, pickup_lng, created_at, updated_at`

	joinedBookingColumns = `b.id, b.trip_id, b.rider_id, b.seats_booked, b.total_amount,
		b.commission_amount, b.status, b.payment_status, b.pickup_location, b.pickup_lat,
		b.pickup_lng, b.created_at, b.updated_at, t.driver_id AS trip_driver_id, t.status AS trip_status`
)

// BookingRepo implements bookings.BookingRepo on PostgreSQL
type BookingRepo struct {
	db *database.DB
}

// NewBookingRepo creates a new booking repository
func NewBookingRepo(db *database.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// CreateBooking reserves seats on a trip in one transaction. The trip row
// is locked, check decides whether booking is allowed, amounts come from
// the trip's per-seat price and seats are taken before the insert.
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking, commissionRate float64, check bookings.TripCheck) (*models.Booking, error) {
	const op = "createBooking"

	var created models.Booking
	err := r.db.Transaction(ctx, func(tx *database.DB) error {
		var trip models.Trip
		err := tx.Get(ctx, &trip, `
			SELECT id, driver_id, status, seats_available, price_per_seat
			FROM trips WHERE id = $1
			FOR UPDATE`, booking.TripID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.NotFound(op, "trip")
			}
			return fmt.Errorf("failed to lock trip: %w", err)
		}

		if check != nil {
			if err := check(&trip); err != nil {
				return err
			}
		}

		total, commission := models.BookingAmounts(trip.PricePerSeat, booking.SeatsBooked, commissionRate)

		if _, err := tx.Exec(ctx, `
			UPDATE trips SET seats_available = seats_available - $2, updated_at = NOW()
			WHERE id = $1`, trip.ID, booking.SeatsBooked); err != nil {
			return fmt.Errorf("failed to reserve seats: %w", err)
		}

		err = tx.Get(ctx, &created, `
			INSERT INTO bookings (id, trip_id, rider_id, seats_booked, total_amount, commission_amount,
				status, payment_status, pickup_location, pickup_lat, pickup_lng)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING `+bookingColumns,
			uuid.NewString(), trip.ID, booking.RiderID, booking.SeatsBooked, total, commission,
			models.BookingStatusPending, models.PaymentStatusPending,
			booking.PickupLocation, booking.PickupLat, booking.PickupLng)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.CreationFailed(op, "booking")
			}
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		created.TripDriverID = trip.DriverID
		created.TripStatus = trip.Status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetBooking retrieves a booking with its trip's driver and status
func (r *BookingRepo) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	query := `
		SELECT ` + joinedBookingColumns + `
		FROM bookings b JOIN trips t ON t.id = b.trip_id
		WHERE b.id = $1`

	var booking models.Booking
	if err := r.db.Get(ctx, &booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("booking", "booking")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

// ListBookingsByRider returns riderID's bookings, newest first
func (r *BookingRepo) ListBookingsByRider(ctx context.Context, riderID string) ([]*models.Booking, error) {
	query := `
		SELECT ` + joinedBookingColumns + `
		FROM bookings b JOIN trips t ON t.id = b.trip_id
		WHERE b.rider_id = $1
		ORDER BY b.created_at DESC`

	list := []*models.Booking{}
	if err := r.db.Select(ctx, &list, query, riderID); err != nil {
		return nil, fmt.Errorf("failed to list rider bookings: %w", err)
	}
	return list, nil
}

// ListBookingsByTrip returns the bookings made on tripID, oldest first
func (r *BookingRepo) ListBookingsByTrip(ctx context.Context, tripID string) ([]*models.Booking, error) {
	query := `
		SELECT ` + joinedBookingColumns + `
		FROM bookings b JOIN trips t ON t.id = b.trip_id
		WHERE b.trip_id = $1
		ORDER BY b.created_at`

	list := []*models.Booking{}
	if err := r.db.Select(ctx, &list, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to list trip bookings: %w", err)
	}
	return list, nil
}

// CancelBooking cancels riderID's booking and returns its seats to the
// trip in the same transaction. check runs against the locked row.
func (r *BookingRepo) CancelBooking(ctx context.Context, id, riderID string, check bookings.BookingCheck) (*models.Booking, error) {
	const op = "cancelBooking"

	var cancelled models.Booking
	err := r.db.Transaction(ctx, func(tx *database.DB) error {
		var current models.Booking
		err := tx.Get(ctx, &current, `
			SELECT `+joinedBookingColumns+`
			FROM bookings b JOIN trips t ON t.id = b.trip_id
			WHERE b.id = $1
			FOR UPDATE OF b, t`, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.NotFound(op, "booking")
			}
			return fmt.Errorf("failed to lock booking: %w", err)
		}
		if current.RiderID != riderID {
			return apperrors.NotOwner(op, "booking")
		}

		if check != nil {
			if err := check(&current); err != nil {
				return err
			}
		}

		err = tx.Get(ctx, &cancelled, `
			UPDATE bookings SET status = $3, updated_at = NOW()
			WHERE id = $1 AND rider_id = $2
			RETURNING `+bookingColumns, id, riderID, models.BookingStatusCancelled)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.NotFound(op, "booking")
			}
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			UPDATE trips SET seats_available = seats_available + $2, updated_at = NOW()
			WHERE id = $1`, current.TripID, current.SeatsBooked); err != nil {
			return fmt.Errorf("failed to release seats: %w", err)
		}

		cancelled.TripDriverID = current.TripDriverID
		cancelled.TripStatus = current.TripStatus
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cancelled, nil
}

// TripDriverID returns the driver of tripID
func (r *BookingRepo) TripDriverID(ctx context.Context, tripID string) (string, error) {
	var driverID string
	if err := r.db.Get(ctx, &driverID, `SELECT driver_id FROM trips WHERE id = $1`, tripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.NotFound("tripBookings", "trip")
		}
		return "", fmt.Errorf("failed to get trip driver: %w", err)
	}
	return driverID, nil
}

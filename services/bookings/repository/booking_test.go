package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/database"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tripID    = "5b0f8f5e-0c52-4a57-8f8e-2b9d6f1d4a10"
	bookingID = "9c1e2d3f-4a5b-4c6d-8e7f-0a1b2c3d4e5f"
)

var (
	bookingCols = []string{"id", "trip_id", "rider_id", "seats_booked", "total_amount", "commission_amount",
		"status", "payment_status", "pickup_location", "pickup_lat", "pickup_lng", "created_at", "updated_at"}
	joinedCols = append(append([]string{}, bookingCols...), "trip_driver_id", "trip_status")
)

func setupBookingRepoTest(t *testing.T) (*BookingRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewBookingRepo(database.NewDB(sqlx.NewDb(mockDB, "sqlmock"), 0))
	return repo, mock, func() { mockDB.Close() }
}

func lockedTrip(status string, seats int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "driver_id", "status", "seats_available", "price_per_seat"}).
		AddRow(tripID, "driver-1", status, seats, 150000.0)
}

func TestCreateBooking_PricesFromTrip(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE id = $1 FOR UPDATE")).
		WithArgs(tripID).
		WillReturnRows(lockedTrip("scheduled", 3))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips SET seats_available = seats_available - $2")).
		WithArgs(tripID, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(sqlmock.AnyArg(), tripID, "rider-1", 2, 300000.0, 30000.0, "pending", "pending", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(bookingID, tripID, "rider-1", 2, 300000.0, 30000.0, "pending", "pending", nil, nil, nil, now, now))
	mock.ExpectCommit()

	var checked *models.Trip
	booking, err := repo.CreateBooking(context.Background(),
		&models.Booking{TripID: tripID, RiderID: "rider-1", SeatsBooked: 2},
		0.10,
		func(trip *models.Trip) error {
			checked = trip
			return nil
		})

	require.NoError(t, err)
	require.NotNil(t, checked)
	assert.Equal(t, 3, checked.SeatsAvailable)
	assert.Equal(t, 300000.0, booking.TotalAmount)
	assert.Equal(t, 30000.0, booking.CommissionAmount)
	assert.Equal(t, "driver-1", booking.TripDriverID)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_CheckRejects(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(tripID).
		WillReturnRows(lockedTrip("cancelled", 3))
	mock.ExpectRollback()

	_, err := repo.CreateBooking(context.Background(),
		&models.Booking{TripID: tripID, RiderID: "rider-1", SeatsBooked: 1},
		0.10,
		func(trip *models.Trip) error {
			return apperrors.Validation("createBooking", "trip is not open for booking")
		})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_TripMissing(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "driver_id", "status", "seats_available", "price_per_seat"}))
	mock.ExpectRollback()

	_, err := repo.CreateBooking(context.Background(), &models.Booking{TripID: tripID, SeatsBooked: 1}, 0.10, nil)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBooking(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings b JOIN trips t ON t.id = b.trip_id WHERE b.id = $1")).
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(joinedCols).
			AddRow(bookingID, tripID, "rider-1", 1, 150000.0, 15000.0, "pending", "pending", "Gambir", -6.17, 106.83, now, now, "driver-1", "completed"))

	booking, err := repo.GetBooking(context.Background(), bookingID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, models.TripStatusCompleted, booking.TripStatus)
	assert.Equal(t, "Gambir", *booking.PickupLocation)
}

func TestCancelBooking_ReturnsSeats(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE OF b, t")).
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(joinedCols).
			AddRow(bookingID, tripID, "rider-1", 2, 300000.0, 30000.0, "confirmed", "paid", nil, nil, nil, now, now, "driver-1", "scheduled"))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings SET status = $3")).
		WithArgs(bookingID, "rider-1", "cancelled").
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(bookingID, tripID, "rider-1", 2, 300000.0, 30000.0, "cancelled", "paid", nil, nil, nil, now, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips SET seats_available = seats_available + $2")).
		WithArgs(tripID, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := repo.CancelBooking(context.Background(), bookingID, "rider-1", nil)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, booking.Status)
	assert.Equal(t, "driver-1", booking.TripDriverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBooking_NonOwner(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE OF b, t")).
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(joinedCols).
			AddRow(bookingID, tripID, "rider-1", 2, 300000.0, 30000.0, "pending", "pending", nil, nil, nil, now, now, "driver-1", "scheduled"))
	mock.ExpectRollback()

	_, err := repo.CancelBooking(context.Background(), bookingID, "intruder", nil)

	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	assert.Equal(t,
		apperrors.Classify(apperrors.NotFound("cancelBooking", "booking"), false),
		apperrors.Classify(err, false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripDriverID(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT driver_id FROM trips WHERE id = $1")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id"}).AddRow("driver-1"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT driver_id FROM trips WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"driver_id"}))

	driverID, err := repo.TripDriverID(context.Background(), tripID)
	require.NoError(t, err)
	assert.Equal(t, "driver-1", driverID)

	_, err = repo.TripDriverID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

package bookings

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// TripCheck inspects the locked trip row before seats are reserved
type TripCheck func(trip *models.Trip) error

// BookingCheck inspects the locked booking row before it is cancelled
type BookingCheck func(booking *models.Booking) error

// BookingRepo defines the interface for booking data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/intercity/services/bookings BookingRepo
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking, commissionRate float64, check TripCheck) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookingsByRider(ctx context.Context, riderID string) ([]*models.Booking, error)
	ListBookingsByTrip(ctx context.Context, tripID string) ([]*models.Booking, error)
	CancelBooking(ctx context.Context, id, riderID string, check BookingCheck) (*models.Booking, error)
	TripDriverID(ctx context.Context, tripID string) (string, error)
}

package bookings

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// BookingUC defines the interface for booking business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/intercity/services/bookings BookingUC
type BookingUC interface {
	CreateBooking(ctx context.Context, riderID string, req models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, userID, id string) (*models.Booking, error)
	ListRiderBookings(ctx context.Context, riderID string) ([]*models.Booking, error)
	ListTripBookings(ctx context.Context, driverID, tripID string) ([]*models.Booking, error)
	CancelBooking(ctx context.Context, riderID, id string) (*models.Booking, error)
}

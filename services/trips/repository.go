package trips

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// TripRepo defines the interface for trip data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/intercity/services/trips TripRepo
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error)
	GetTrip(ctx context.Context, id string) (*models.Trip, error)
	SearchTrips(ctx context.Context, search models.TripSearch) ([]*models.Trip, error)
	ListTripsByGeohash(ctx context.Context, cells []string, limit int) ([]*models.Trip, error)
	ListTripsByDriver(ctx context.Context, driverID string) ([]*models.Trip, error)
	TransitionTrip(ctx context.Context, id, driverID string, to models.TripStatus) (*models.Trip, error)
	ListRiderIDs(ctx context.Context, tripID string) ([]string, error)
}

package trips

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// TripUC defines the interface for trip business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/intercity/services/trips TripUC
type TripUC interface {
	CreateTrip(ctx context.Context, driverID string, req models.CreateTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, id string) (*models.Trip, error)
	SearchTrips(ctx context.Context, search models.TripSearch) ([]*models.Trip, error)
	NearbyTrips(ctx context.Context, lat, lng float64, precision int, limit int) ([]*models.Trip, error)
	ListDriverTrips(ctx context.Context, driverID string) ([]*models.Trip, error)

	StartTrip(ctx context.Context, driverID, id string) (*models.Trip, error)
	CompleteTrip(ctx context.Context, driverID, id string) (*models.Trip, error)
	CancelTrip(ctx context.Context, driverID, id string) (*models.Trip, error)
}

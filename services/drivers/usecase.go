package drivers

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// DriverUC defines the interface for driver business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/intercity/services/drivers DriverUC
type DriverUC interface {
	CreateProfile(ctx context.Context, userID string, req models.CreateDriverProfileRequest) (*models.DriverProfile, error)
	GetProfile(ctx context.Context, userID string) (*models.DriverProfile, error)
	UpdateAvailability(ctx context.Context, userID string, available bool) (*models.DriverProfile, error)
	SetActiveVehicle(ctx context.Context, userID, vehicleID string) (*models.DriverProfile, error)

	CreateVehicle(ctx context.Context, userID string, req models.CreateVehicleRequest) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, userID string) ([]*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, userID, vehicleID string) (bool, error)
}

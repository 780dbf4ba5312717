package drivers

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// DriverRepo defines the interface for driver profile and vehicle data access
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/intercity/services/drivers DriverRepo
type DriverRepo interface {
	CreateProfile(ctx context.Context, profile *models.DriverProfile) (*models.DriverProfile, error)
	GetProfileByUserID(ctx context.Context, userID string) (*models.DriverProfile, error)
	SetAvailability(ctx context.Context, userID string, available bool) (*models.DriverProfile, error)
	SetActiveVehicle(ctx context.Context, userID, vehicleID string) (*models.DriverProfile, error)

	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, driverID string) ([]*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id, driverID string) (bool, error)
}

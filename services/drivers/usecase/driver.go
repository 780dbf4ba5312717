package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/piresc/intercity/internal/utils"
	"github.com/piresc/intercity/services/drivers"
	"github.com/piresc/intercity/services/users"
)

const maxVehicleImages = 10

// DriverUC implements drivers.DriverUC
type DriverUC struct {
	driverRepo drivers.DriverRepo
	userRepo   users.UserRepo
	now        func() time.Time
}

// NewDriverUC creates a new driver usecase instance
func NewDriverUC(driverRepo drivers.DriverRepo, userRepo users.UserRepo) *DriverUC {
	return &DriverUC{
		driverRepo: driverRepo,
		userRepo:   userRepo,
		now:        models.Now,
	}
}

// CreateProfile creates the caller's driver profile. The caller's account
// must carry the driver role.
func (uc *DriverUC) CreateProfile(ctx context.Context, userID string, req models.CreateDriverProfileRequest) (*models.DriverProfile, error) {
	const op = "createDriverProfile"

	license := strings.TrimSpace(req.LicenseNumber)
	if license == "" {
		return nil, apperrors.Validation(op, "license number is required")
	}
	if !req.LicenseExpiry.After(uc.now()) {
		return nil, apperrors.Validation(op, "license has expired")
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.Role.Includes(models.RoleDriver) {
		return nil, apperrors.InsufficientPermissions(op, "driver role required")
	}

	profile, err := uc.driverRepo.CreateProfile(ctx, &models.DriverProfile{
		UserID:        userID,
		LicenseNumber: license,
		LicenseExpiry: req.LicenseExpiry,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Driver profile created",
		logger.String("user_id", userID),
		logger.String("profile_id", profile.ID))
	return profile, nil
}

// GetProfile returns the driver profile of userID
func (uc *DriverUC) GetProfile(ctx context.Context, userID string) (*models.DriverProfile, error) {
	return uc.driverRepo.GetProfileByUserID(ctx, userID)
}

// UpdateAvailability toggles the caller's availability flag
func (uc *DriverUC) UpdateAvailability(ctx context.Context, userID string, available bool) (*models.DriverProfile, error) {
	return uc.driverRepo.SetAvailability(ctx, userID, available)
}

// SetActiveVehicle selects one of the caller's vehicles as active
func (uc *DriverUC) SetActiveVehicle(ctx context.Context, userID, vehicleID string) (*models.DriverProfile, error) {
	if !utils.IsUUID(vehicleID) {
		return nil, apperrors.NotFound("setActiveVehicle", "vehicle")
	}
	return uc.driverRepo.SetActiveVehicle(ctx, userID, vehicleID)
}

// CreateVehicle registers a vehicle owned by the caller
func (uc *DriverUC) CreateVehicle(ctx context.Context, userID string, req models.CreateVehicleRequest) (*models.Vehicle, error) {
	const op = "createVehicle"

	vehicle := &models.Vehicle{
		DriverID:     userID,
		Make:         strings.TrimSpace(req.Make),
		Model:        strings.TrimSpace(req.Model),
		Year:         req.Year,
		Color:        strings.TrimSpace(req.Color),
		LicensePlate: strings.ToUpper(strings.TrimSpace(req.LicensePlate)),
		Capacity:     req.Capacity,
		Images:       models.StringList(req.Images),
	}

	switch {
	case vehicle.Make == "" || vehicle.Model == "":
		return nil, apperrors.Validation(op, "make and model are required")
	case vehicle.LicensePlate == "":
		return nil, apperrors.Validation(op, "license plate is required")
	case vehicle.Capacity <= 0:
		return nil, apperrors.Validation(op, "capacity must be positive")
	case vehicle.Year < 1950 || vehicle.Year > uc.now().Year()+1:
		return nil, apperrors.Validation(op, "year is out of range")
	case len(vehicle.Images) > maxVehicleImages:
		return nil, apperrors.Validation(op, "too many vehicle images")
	}
	if vehicle.Images == nil {
		vehicle.Images = models.StringList{}
	}

	created, err := uc.driverRepo.CreateVehicle(ctx, vehicle)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Vehicle registered",
		logger.String("driver_id", userID),
		logger.String("vehicle_id", created.ID))
	return created, nil
}

// GetVehicle returns a vehicle by id
func (uc *DriverUC) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	if !utils.IsUUID(id) {
		return nil, apperrors.NotFound("vehicle", "vehicle")
	}
	return uc.driverRepo.GetVehicle(ctx, id)
}

// ListVehicles returns the caller's vehicles
func (uc *DriverUC) ListVehicles(ctx context.Context, userID string) ([]*models.Vehicle, error) {
	return uc.driverRepo.ListVehicles(ctx, userID)
}

// DeleteVehicle removes one of the caller's vehicles. It reports false,
// never an error, when nothing was removed.
func (uc *DriverUC) DeleteVehicle(ctx context.Context, userID, vehicleID string) (bool, error) {
	if !utils.IsUUID(vehicleID) {
		return false, nil
	}

	deleted, err := uc.driverRepo.DeleteVehicle(ctx, vehicleID, userID)
	if err != nil {
		return false, err
	}
	if deleted {
		logger.InfoCtx(ctx, "Vehicle deleted",
			logger.String("driver_id", userID),
			logger.String("vehicle_id", vehicleID))
	}
	return deleted, nil
}

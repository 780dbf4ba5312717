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
)

const profileColumns = `id, user_id, license_number, license_expiry, background_check_status,
	average_rating, total_trips, is_available, vehicle_id, created_at, updated_at`

// DriverRepo implements drivers.DriverRepo on PostgreSQL
type DriverRepo struct {
	db *database.DB
}

// NewDriverRepo creates a new driver repository
func NewDriverRepo(db *database.DB) *DriverRepo {
	return &DriverRepo{db: db}
}

// CreateProfile inserts the driver profile of a user. A second profile for
// the same user or a reused license number is a conflict.
func (r *DriverRepo) CreateProfile(ctx context.Context, profile *models.DriverProfile) (*models.DriverProfile, error) {
	query := `
		INSERT INTO driver_profiles (id, user_id, license_number, license_expiry, background_check_status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING
		RETURNING ` + profileColumns

	var created models.DriverProfile
	err := r.db.Get(ctx, &created, query,
		uuid.NewString(), profile.UserID, profile.LicenseNumber, profile.LicenseExpiry, models.BackgroundCheckPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Conflict("createDriverProfile", "driver profile already exists or license number in use", nil)
		}
		return nil, fmt.Errorf("failed to insert driver profile: %w", err)
	}
	return &created, nil
}

// GetProfileByUserID retrieves the driver profile of userID
func (r *DriverRepo) GetProfileByUserID(ctx context.Context, userID string) (*models.DriverProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM driver_profiles WHERE user_id = $1`

	var profile models.DriverProfile
	if err := r.db.Get(ctx, &profile, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("driverProfile", "driver profile")
		}
		return nil, fmt.Errorf("failed to get driver profile: %w", err)
	}
	return &profile, nil
}

// SetAvailability toggles whether the driver accepts new trips
func (r *DriverRepo) SetAvailability(ctx context.Context, userID string, available bool) (*models.DriverProfile, error) {
	query := `
		UPDATE driver_profiles SET is_available = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + profileColumns

	var profile models.DriverProfile
	if err := r.db.Get(ctx, &profile, query, userID, available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("updateDriverAvailability", "driver profile")
		}
		return nil, fmt.Errorf("failed to update driver availability: %w", err)
	}
	return &profile, nil
}

// SetActiveVehicle points the driver profile at one of the driver's own vehicles.
// A vehicle owned by someone else matches no row.
func (r *DriverRepo) SetActiveVehicle(ctx context.Context, userID, vehicleID string) (*models.DriverProfile, error) {
	query := `
		UPDATE driver_profiles SET vehicle_id = $2, updated_at = NOW()
		WHERE user_id = $1
		  AND EXISTS (SELECT 1 FROM vehicles WHERE id = $2 AND driver_id = $1)
		RETURNING ` + profileColumns

	var profile models.DriverProfile
	if err := r.db.Get(ctx, &profile, query, userID, vehicleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("setActiveVehicle", "vehicle")
		}
		return nil, fmt.Errorf("failed to set active vehicle: %w", err)
	}
	return &profile, nil
}

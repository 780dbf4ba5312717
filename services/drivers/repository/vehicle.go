package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/models"
)

const vehicleColumns = `id, driver_id, make, model, year, color, license_plate, capacity,
	vehicle_images, is_verified, created_at, updated_at`

// CreateVehicle registers a vehicle for its driver
func (r *DriverRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	query := `
		INSERT INTO vehicles (id, driver_id, make, model, year, color, license_plate, capacity, vehicle_images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + vehicleColumns

	var created models.Vehicle
	err := r.db.Get(ctx, &created, query,
		uuid.NewString(), vehicle.DriverID, vehicle.Make, vehicle.Model, vehicle.Year,
		vehicle.Color, vehicle.LicensePlate, vehicle.Capacity, vehicle.Images)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.CreationFailed("createVehicle", "vehicle")
		}
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("createVehicle", "license plate already registered", err)
		}
		return nil, fmt.Errorf("failed to insert vehicle: %w", err)
	}
	return &created, nil
}

// GetVehicle retrieves a vehicle by id
func (r *DriverRepo) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	var vehicle models.Vehicle
	if err := r.db.Get(ctx, &vehicle, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("vehicle", "vehicle")
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &vehicle, nil
}

// ListVehicles returns the vehicles of driverID, oldest first
func (r *DriverRepo) ListVehicles(ctx context.Context, driverID string) ([]*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE driver_id = $1 ORDER BY created_at`

	vehicles := []*models.Vehicle{}
	if err := r.db.Select(ctx, &vehicles, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// DeleteVehicle removes the vehicle when driverID owns it and reports
// whether a row was removed
func (r *DriverRepo) DeleteVehicle(ctx context.Context, id, driverID string) (bool, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1 AND driver_id = $2`, id, driverID)
	if err != nil {
		return false, fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return n > 0, nil
}

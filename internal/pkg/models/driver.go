package models

import (
	"time"
)

// BackgroundCheckStatus represents the state of a driver's background check
type BackgroundCheckStatus string

const (
	BackgroundCheckPending  BackgroundCheckStatus = "pending"
	BackgroundCheckApproved BackgroundCheckStatus = "approved"
	BackgroundCheckRejected BackgroundCheckStatus = "rejected"
)

// DriverProfile is the one-to-one driver extension of a User
type DriverProfile struct {
	ID                    string                `json:"id" db:"id"`
	UserID                string                `json:"user_id" db:"user_id"`
	LicenseNumber         string                `json:"license_number" db:"license_number"`
	LicenseExpiry         time.Time             `json:"license_expiry" db:"license_expiry"`
	BackgroundCheckStatus BackgroundCheckStatus `json:"background_check_status" db:"background_check_status"`
	AverageRating         float64               `json:"average_rating" db:"average_rating"`
	TotalTrips            int                   `json:"total_trips" db:"total_trips"`
	IsAvailable           bool                  `json:"is_available" db:"is_available"`
	VehicleID             *string               `json:"vehicle_id,omitempty" db:"vehicle_id"`
	CreatedAt             time.Time             `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at" db:"updated_at"`
}

// CreateDriverProfileRequest carries the input for becoming a driver
type CreateDriverProfileRequest struct {
	LicenseNumber string
	LicenseExpiry time.Time
}

// Vehicle belongs to a driver
type Vehicle struct {
	ID           string     `json:"id" db:"id"`
	DriverID     string     `json:"driver_id" db:"driver_id"`
	Make         string     `json:"make" db:"make"`
	Model        string     `json:"model" db:"model"`
	Year         int        `json:"year" db:"year"`
	Color        string     `json:"color" db:"color"`
	LicensePlate string     `json:"license_plate" db:"license_plate"`
	Capacity     int        `json:"capacity" db:"capacity"`
	Images       StringList `json:"vehicle_images" db:"vehicle_images"`
	IsVerified   bool       `json:"is_verified" db:"is_verified"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateVehicleRequest carries the input for registering a vehicle
type CreateVehicleRequest struct {
	Make         string
	Model        string
	Year         int
	Color        string
	LicensePlate string
	Capacity     int
	Images       []string
}

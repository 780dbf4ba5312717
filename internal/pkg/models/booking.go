package models

import (
	"math"
	"time"
)

// BookingStatus represents the state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking links a rider to seats on a trip
type Booking struct {
	ID               string        `json:"id" db:"id"`
	TripID           string        `json:"trip_id" db:"trip_id"`
	RiderID          string        `json:"rider_id" db:"rider_id"`
	SeatsBooked      int           `json:"seats_booked" db:"seats_booked"`
	TotalAmount      float64       `json:"total_amount" db:"total_amount"`
	CommissionAmount float64       `json:"commission_amount" db:"commission_amount"`
	Status           BookingStatus `json:"status" db:"status"`
	PaymentStatus    PaymentStatus `json:"payment_status" db:"payment_status"`
	PickupLocation   *string       `json:"pickup_location,omitempty" db:"pickup_location"`
	PickupLat        *float64      `json:"pickup_lat,omitempty" db:"pickup_lat"`
	PickupLng        *float64      `json:"pickup_lng,omitempty" db:"pickup_lng"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`

	// TripDriverID is filled by queries that join the owning trip
	TripDriverID string `json:"-" db:"trip_driver_id"`
	// TripStatus is filled by queries that join the owning trip
	TripStatus TripStatus `json:"-" db:"trip_status"`
}

// CreateBookingRequest carries the input for reserving seats
type CreateBookingRequest struct {
	TripID         string
	SeatsBooked    int
	PickupLocation *string
	PickupLat      *float64
	PickupLng      *float64
}

// BookingAmounts computes total and commission for seats at a per-seat price
func BookingAmounts(pricePerSeat float64, seats int, commissionRate float64) (total, commission float64) {
	total = roundCents(pricePerSeat * float64(seats))
	commission = roundCents(total * commissionRate)
	return total, commission
}

// roundCents rounds half away from zero
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

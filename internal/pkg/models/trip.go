package models

import (
	"time"
)

// TripStatus represents the lifecycle state of a trip
type TripStatus string

const (
	TripStatusScheduled TripStatus = "scheduled"
	TripStatusActive    TripStatus = "active"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// tripTransitions lists, for each target state, the states it may be entered from
var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusActive:    {TripStatusScheduled},
	TripStatusCompleted: {TripStatusActive},
	TripStatusCancelled: {TripStatusScheduled, TripStatusActive},
}

// TripSourceStates returns the states from which a trip may move to target
func TripSourceStates(target TripStatus) []TripStatus {
	return tripTransitions[target]
}

// CanTransitionTo reports whether a trip in state s may move to next
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	for _, from := range tripTransitions[next] {
		if from == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible
func (s TripStatus) IsTerminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// TripType distinguishes one-way from round trips
type TripType string

const (
	TripTypeOneWay    TripType = "one_way"
	TripTypeRoundTrip TripType = "round_trip"
)

// Valid reports whether t is a known trip type
func (t TripType) Valid() bool {
	return t == TripTypeOneWay || t == TripTypeRoundTrip
}

// Trip is an intercity journey offered by a driver
type Trip struct {
	ID                 string     `json:"id" db:"id"`
	DriverID           string     `json:"driver_id" db:"driver_id"`
	OriginCity         string     `json:"origin_city" db:"origin_city"`
	DestinationCity    string     `json:"destination_city" db:"destination_city"`
	OriginLat          float64    `json:"origin_lat" db:"origin_lat"`
	OriginLng          float64    `json:"origin_lng" db:"origin_lng"`
	DestinationLat     float64    `json:"destination_lat" db:"destination_lat"`
	DestinationLng     float64    `json:"destination_lng" db:"destination_lng"`
	OriginGeohash      string     `json:"origin_geohash" db:"origin_geohash"`
	DestinationGeohash string     `json:"destination_geohash" db:"destination_geohash"`
	DepartureTime      time.Time  `json:"departure_time" db:"departure_time"`
	ReturnTime         *time.Time `json:"return_time,omitempty" db:"return_time"`
	SeatsAvailable     int        `json:"seats_available" db:"seats_available"`
	PricePerSeat       float64    `json:"price_per_seat" db:"price_per_seat"`
	Status             TripStatus `json:"status" db:"status"`
	TripType           TripType   `json:"trip_type" db:"trip_type"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateTripRequest carries the input for offering a trip
type CreateTripRequest struct {
	OriginCity      string
	DestinationCity string
	OriginLat       float64
	OriginLng       float64
	DestinationLat  float64
	DestinationLng  float64
	DepartureTime   time.Time
	ReturnTime      *time.Time
	SeatsAvailable  int
	PricePerSeat    float64
	TripType        TripType
}

// TripSearch filters scheduled trips by route and departure day
type TripSearch struct {
	OriginCity      string
	DestinationCity string
	Date            *time.Time
	Limit           int
}

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

const tripColumns = `id, driver_id, origin_city, destination_city, origin_lat, origin_lng,
	destination_lat, destination_lng, origin_geohash, destination_geohash, departure_time,
	return_time, seats_available, price_per_seat, status, trip_type, created_at, updated_at`

var transitionOps = map[models.TripStatus]string{
	models.TripStatusActive:    "startTrip",
	models.TripStatusCompleted: "completeTrip",
	models.TripStatusCancelled: "cancelTrip",
}

// TripRepo implements trips.TripRepo on PostgreSQL
type TripRepo struct {
	db *database.DB
}

// NewTripRepo creates a new trip repository
func NewTripRepo(db *database.DB) *TripRepo {
	return &TripRepo{db: db}
}

// CreateTrip inserts a scheduled trip
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	query := `
		INSERT INTO trips (id, driver_id, origin_city, destination_city, origin_lat, origin_lng,
			destination_lat, destination_lng, origin_geohash, destination_geohash, departure_time,
			return_time, seats_available, price_per_seat, status, trip_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + tripColumns

	var created models.Trip
	err := r.db.Get(ctx, &created, query,
		uuid.NewString(), trip.DriverID, trip.OriginCity, trip.DestinationCity,
		trip.OriginLat, trip.OriginLng, trip.DestinationLat, trip.DestinationLng,
		trip.OriginGeohash, trip.DestinationGeohash, trip.DepartureTime, trip.ReturnTime,
		trip.SeatsAvailable, trip.PricePerSeat, models.TripStatusScheduled, trip.TripType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.CreationFailed("createTrip", "trip")
		}
		return nil, fmt.Errorf("failed to insert trip: %w", err)
	}
	return &created, nil
}

// GetTrip retrieves a trip by id
func (r *TripRepo) GetTrip(ctx context.Context, id string) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	var trip models.Trip
	if err := r.db.Get(ctx, &trip, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("trip", "trip")
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// SearchTrips lists upcoming scheduled trips on a route, soonest first.
// Empty cities and a nil date match everything.
func (r *TripRepo) SearchTrips(ctx context.Context, search models.TripSearch) ([]*models.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE status = 'scheduled'
		  AND departure_time > NOW()
		  AND ($1 = '' OR LOWER(origin_city) = LOWER($1))
		  AND ($2 = '' OR LOWER(destination_city) = LOWER($2))
		  AND ($3::date IS NULL OR departure_time::date = $3::date)
		ORDER BY departure_time
		LIMIT $4`

	list := []*models.Trip{}
	err := r.db.Select(ctx, &list, query, search.OriginCity, search.DestinationCity, search.Date, search.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search trips: %w", err)
	}
	return list, nil
}

// ListTripsByGeohash lists upcoming scheduled trips whose origin falls in
// one of cells. All cells must share one precision.
func (r *TripRepo) ListTripsByGeohash(ctx context.Context, cells []string, limit int) ([]*models.Trip, error) {
	list := []*models.Trip{}
	if len(cells) == 0 {
		return list, nil
	}

	query, args, err := database.In(`
		SELECT `+tripColumns+`
		FROM trips
		WHERE status = 'scheduled'
		  AND departure_time > NOW()
		  AND LEFT(origin_geohash, ?) IN (?)
		ORDER BY departure_time
		LIMIT ?`, len(cells[0]), cells, limit)
	if err != nil {
		return nil, err
	}

	if err := r.db.Select(ctx, &list, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list nearby trips: %w", err)
	}
	return list, nil
}

// ListTripsByDriver returns the trips offered by driverID, newest departure first
func (r *TripRepo) ListTripsByDriver(ctx context.Context, driverID string) ([]*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE driver_id = $1 ORDER BY departure_time DESC`

	list := []*models.Trip{}
	if err := r.db.Select(ctx, &list, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list driver trips: %w", err)
	}
	return list, nil
}

// TransitionTrip moves the trip to status to, conditional on the caller
// owning it and on its current status being a legal source state. A
// completed trip also counts towards the driver's total trips.
func (r *TripRepo) TransitionTrip(ctx context.Context, id, driverID string, to models.TripStatus) (*models.Trip, error) {
	op, ok := transitionOps[to]
	if !ok {
		return nil, apperrors.Validation("transitionTrip", fmt.Sprintf("unsupported target status %q", to))
	}

	from := make([]string, 0, 2)
	for _, s := range models.TripSourceStates(to) {
		from = append(from, string(s))
	}

	query, args, err := database.In(`
		UPDATE trips SET status = ?, updated_at = NOW()
		WHERE id = ? AND driver_id = ? AND status IN (?)
		RETURNING `+tripColumns, string(to), id, driverID, from)
	if err != nil {
		return nil, err
	}

	var trip models.Trip
	err = r.db.Transaction(ctx, func(tx *database.DB) error {
		if err := tx.Get(ctx, &trip, query, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return explainTransition(ctx, tx, op, id, driverID, to)
			}
			return fmt.Errorf("failed to update trip status: %w", err)
		}

		if to == models.TripStatusCompleted {
			_, err := tx.Exec(ctx, `
				UPDATE driver_profiles SET total_trips = total_trips + 1, updated_at = NOW()
				WHERE user_id = $1`, driverID)
			if err != nil {
				return fmt.Errorf("failed to update driver trip count: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// explainTransition classifies a conditional update that matched no row
func explainTransition(ctx context.Context, tx *database.DB, op, id, driverID string, to models.TripStatus) error {
	var current struct {
		DriverID string            `db:"driver_id"`
		Status   models.TripStatus `db:"status"`
	}
	if err := tx.Get(ctx, &current, `SELECT driver_id, status FROM trips WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound(op, "trip")
		}
		return fmt.Errorf("failed to read trip status: %w", err)
	}
	if current.DriverID != driverID {
		return apperrors.NotOwner(op, "trip")
	}
	return apperrors.InvalidStateTransition(op, "trip", current.Status, to)
}

// ListRiderIDs returns the riders holding live bookings on tripID
func (r *TripRepo) ListRiderIDs(ctx context.Context, tripID string) ([]string, error) {
	query := `
		SELECT DISTINCT rider_id FROM bookings
		WHERE trip_id = $1 AND status IN ('pending', 'confirmed')`

	ids := []string{}
	if err := r.db.Select(ctx, &ids, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to list trip riders: %w", err)
	}
	return ids, nil
}

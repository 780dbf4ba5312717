package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/piresc/intercity/internal/utils"
	"github.com/piresc/intercity/services/drivers"
	"github.com/piresc/intercity/services/notifications"
	"github.com/piresc/intercity/services/trips"
)

const (
	// StoredGeohashPrecision is the precision trip endpoints are persisted at
	StoredGeohashPrecision uint = 7

	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// TripUC implements trips.TripUC
type TripUC struct {
	tripRepo   trips.TripRepo
	driverRepo drivers.DriverRepo
	publisher  notifications.EventPublisher
	now        func() time.Time
}

// NewTripUC creates a new trip usecase instance
func NewTripUC(tripRepo trips.TripRepo, driverRepo drivers.DriverRepo, publisher notifications.EventPublisher) *TripUC {
	return &TripUC{
		tripRepo:   tripRepo,
		driverRepo: driverRepo,
		publisher:  publisher,
		now:        models.Now,
	}
}

// CreateTrip offers a new scheduled trip. The caller needs a driver profile.
func (uc *TripUC) CreateTrip(ctx context.Context, driverID string, req models.CreateTripRequest) (*models.Trip, error) {
	const op = "createTrip"

	if err := uc.validateTrip(op, &req); err != nil {
		return nil, err
	}

	if _, err := uc.driverRepo.GetProfileByUserID(ctx, driverID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InsufficientPermissions(op, "driver profile required")
		}
		return nil, err
	}

	trip, err := uc.tripRepo.CreateTrip(ctx, &models.Trip{
		DriverID:           driverID,
		OriginCity:         req.OriginCity,
		DestinationCity:    req.DestinationCity,
		OriginLat:          req.OriginLat,
		OriginLng:          req.OriginLng,
		DestinationLat:     req.DestinationLat,
		DestinationLng:     req.DestinationLng,
		OriginGeohash:      utils.EncodePoint(req.OriginLat, req.OriginLng, StoredGeohashPrecision),
		DestinationGeohash: utils.EncodePoint(req.DestinationLat, req.DestinationLng, StoredGeohashPrecision),
		DepartureTime:      req.DepartureTime.UTC(),
		ReturnTime:         req.ReturnTime,
		SeatsAvailable:     req.SeatsAvailable,
		PricePerSeat:       req.PricePerSeat,
		TripType:           req.TripType,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trip created",
		logger.String("trip_id", trip.ID),
		logger.String("driver_id", driverID),
		logger.String("route", trip.OriginCity+" -> "+trip.DestinationCity))
	return trip, nil
}

func (uc *TripUC) validateTrip(op string, req *models.CreateTripRequest) error {
	req.OriginCity = strings.TrimSpace(req.OriginCity)
	req.DestinationCity = strings.TrimSpace(req.DestinationCity)
	if req.TripType == "" {
		req.TripType = models.TripTypeOneWay
	}

	switch {
	case req.OriginCity == "" || req.DestinationCity == "":
		return apperrors.Validation(op, "origin and destination cities are required")
	case !utils.ValidCoordinates(req.OriginLat, req.OriginLng) || !utils.ValidCoordinates(req.DestinationLat, req.DestinationLng):
		return apperrors.Validation(op, "coordinates are out of range")
	case req.SeatsAvailable <= 0:
		return apperrors.Validation(op, "seats available must be positive")
	case req.PricePerSeat <= 0:
		return apperrors.Validation(op, "price per seat must be positive")
	case !req.DepartureTime.After(uc.now()):
		return apperrors.Validation(op, "departure time must be in the future")
	case !req.TripType.Valid():
		return apperrors.Validation(op, "trip type must be one_way or round_trip")
	}

	if req.TripType == models.TripTypeRoundTrip {
		if req.ReturnTime == nil {
			return apperrors.Validation(op, "round trips require a return time")
		}
		if !req.ReturnTime.After(req.DepartureTime) {
			return apperrors.Validation(op, "return time must be after departure time")
		}
	}
	return nil
}

// GetTrip returns a trip by id
func (uc *TripUC) GetTrip(ctx context.Context, id string) (*models.Trip, error) {
	if !utils.IsUUID(id) {
		return nil, apperrors.NotFound("trip", "trip")
	}
	return uc.tripRepo.GetTrip(ctx, id)
}

// SearchTrips lists upcoming trips on a route
func (uc *TripUC) SearchTrips(ctx context.Context, search models.TripSearch) ([]*models.Trip, error) {
	search.OriginCity = strings.TrimSpace(search.OriginCity)
	search.DestinationCity = strings.TrimSpace(search.DestinationCity)
	search.Limit = clampLimit(search.Limit)
	return uc.tripRepo.SearchTrips(ctx, search)
}

// NearbyTrips lists upcoming trips departing from the geohash cell around
// the point or any of its neighbours
func (uc *TripUC) NearbyTrips(ctx context.Context, lat, lng float64, precision int, limit int) ([]*models.Trip, error) {
	if !utils.ValidCoordinates(lat, lng) {
		return nil, apperrors.Validation("nearbyTrips", "coordinates are out of range")
	}

	p := uint(utils.DefaultGeohashPrecision)
	if precision > 0 {
		p = uint(precision)
	}
	if p > StoredGeohashPrecision {
		p = StoredGeohashPrecision
	}

	cells := utils.NearbyCells(lat, lng, p)
	logger.DebugCtx(ctx, "Searching nearby trips",
		logger.Int("precision", int(p)),
		logger.Strings("cells", cells))

	return uc.tripRepo.ListTripsByGeohash(ctx, cells, clampLimit(limit))
}

// ListDriverTrips returns the trips offered by driverID
func (uc *TripUC) ListDriverTrips(ctx context.Context, driverID string) ([]*models.Trip, error) {
	return uc.tripRepo.ListTripsByDriver(ctx, driverID)
}

// StartTrip moves a scheduled trip to active
func (uc *TripUC) StartTrip(ctx context.Context, driverID, id string) (*models.Trip, error) {
	return uc.transition(ctx, "startTrip", driverID, id, models.TripStatusActive, models.NotificationTripStarted)
}

// CompleteTrip moves an active trip to completed. Bookings keep their own status.
func (uc *TripUC) CompleteTrip(ctx context.Context, driverID, id string) (*models.Trip, error) {
	return uc.transition(ctx, "completeTrip", driverID, id, models.TripStatusCompleted, models.NotificationTripCompleted)
}

// CancelTrip moves a scheduled or active trip to cancelled
func (uc *TripUC) CancelTrip(ctx context.Context, driverID, id string) (*models.Trip, error) {
	return uc.transition(ctx, "cancelTrip", driverID, id, models.TripStatusCancelled, models.NotificationTripCancelled)
}

func (uc *TripUC) transition(ctx context.Context, op, driverID, id string, to models.TripStatus, notificationType string) (*models.Trip, error) {
	if !utils.IsUUID(id) {
		return nil, apperrors.NotFound(op, "trip")
	}

	trip, err := uc.tripRepo.TransitionTrip(ctx, id, driverID, to)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trip status changed",
		logger.String("trip_id", trip.ID),
		logger.String("status", string(trip.Status)))

	uc.notifyRiders(ctx, trip, notificationType)
	return trip, nil
}

func (uc *TripUC) notifyRiders(ctx context.Context, trip *models.Trip, notificationType string) {
	riders, err := uc.tripRepo.ListRiderIDs(ctx, trip.ID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to list trip riders for notification",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
		return
	}

	route := trip.OriginCity + " to " + trip.DestinationCity
	events := make([]models.NotificationEvent, 0, len(riders))
	for _, riderID := range riders {
		events = append(events, models.NotificationEvent{
			UserID:   riderID,
			Title:    "Trip " + string(trip.Status),
			Message:  fmt.Sprintf("Your trip from %s is now %s", route, trip.Status),
			Type:     notificationType,
			Metadata: map[string]interface{}{"trip_id": trip.ID},
		})
	}
	notifications.Notify(ctx, uc.publisher, events...)
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultSearchLimit
	case limit > MaxSearchLimit:
		return MaxSearchLimit
	}
	return limit
}

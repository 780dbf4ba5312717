package graph

import (
	"context"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/models"
)

// Me returns the caller's account, or null before registration
func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	id, err := caller(ctx, "me")
	if err != nil {
		return nil, err
	}
	u, err := r.users.GetUser(ctx, id.SubjectID)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &userResolver{u: u}, nil
}

func (r *Resolver) User(ctx context.Context, args struct{ ID graphql.ID }) (*userResolver, error) {
	if _, err := caller(ctx, "user"); err != nil {
		return nil, err
	}
	u, err := r.users.GetUser(ctx, idValue(args.ID))
	if err != nil {
		return nil, err
	}
	return &userResolver{u: u}, nil
}

func (r *Resolver) DriverProfile(ctx context.Context, args struct{ UserID graphql.ID }) (*driverProfileResolver, error) {
	p, err := r.drivers.GetProfile(ctx, idValue(args.UserID))
	if err != nil {
		return nil, err
	}
	return &driverProfileResolver{p: p}, nil
}

func (r *Resolver) MyVehicles(ctx context.Context) ([]*vehicleResolver, error) {
	id, err := caller(ctx, "myVehicles")
	if err != nil {
		return nil, err
	}
	list, err := r.drivers.ListVehicles(ctx, id.SubjectID)
	if err != nil {
		return nil, err
	}
	out := make([]*vehicleResolver, len(list))
	for i, v := range list {
		out[i] = &vehicleResolver{v: v}
	}
	return out, nil
}

func (r *Resolver) Trip(ctx context.Context, args struct{ ID graphql.ID }) (*tripResolver, error) {
	t, err := r.trips.GetTrip(ctx, idValue(args.ID))
	if err != nil {
		return nil, err
	}
	return &tripResolver{t: t, root: r}, nil
}

type searchTripsArgs struct {
	OriginCity      *string
	DestinationCity *string
	Date            *graphql.Time
	Limit           *int32
}

func (r *Resolver) SearchTrips(ctx context.Context, args searchTripsArgs) ([]*tripResolver, error) {
	search := models.TripSearch{Limit: int32Value(args.Limit)}
	if args.OriginCity != nil {
		search.OriginCity = *args.OriginCity
	}
	if args.DestinationCity != nil {
		search.DestinationCity = *args.DestinationCity
	}
	if args.Date != nil {
		d := args.Date.Time.UTC().Truncate(24 * time.Hour)
		search.Date = &d
	}

	list, err := r.trips.SearchTrips(ctx, search)
	if err != nil {
		return nil, err
	}
	return r.tripList(list), nil
}

type nearbyTripsArgs struct {
	Lat       float64
	Lng       float64
	Precision *int32
	Limit     *int32
}

func (r *Resolver) NearbyTrips(ctx context.Context, args nearbyTripsArgs) ([]*tripResolver, error) {
	list, err := r.trips.NearbyTrips(ctx, args.Lat, args.Lng, int32Value(args.Precision), int32Value(args.Limit))
	if err != nil {
		return nil, err
	}
	return r.tripList(list), nil
}

func (r *Resolver) MyTrips(ctx context.Context) ([]*tripResolver, error) {
	id, err := caller(ctx, "myTrips")
	if err != nil {
		return nil, err
	}
	list, err := r.trips.ListDriverTrips(ctx, id.SubjectID)
	if err != nil {
		return nil, err
	}
	return r.tripList(list), nil
}

func (r *Resolver) TripBookings(ctx context.Context, args struct{ TripID graphql.ID }) ([]*bookingResolver, error) {
	id, err := caller(ctx, "tripBookings")
	if err != nil {
		return nil, err
	}
	list, err := r.bookings.ListTripBookings(ctx, id.SubjectID, idValue(args.TripID))
	if err != nil {
		return nil, err
	}
	return r.bookingList(list), nil
}

func (r *Resolver) Booking(ctx context.Context, args struct{ ID graphql.ID }) (*bookingResolver, error) {
	id, err := caller(ctx, "booking")
	if err != nil {
		return nil, err
	}
	b, err := r.bookings.GetBooking(ctx, id.SubjectID, idValue(args.ID))
	if err != nil {
		return nil, err
	}
	return &bookingResolver{b: b, root: r}, nil
}

func (r *Resolver) MyBookings(ctx context.Context) ([]*bookingResolver, error) {
	id, err := caller(ctx, "myBookings")
	if err != nil {
		return nil, err
	}
	list, err := r.bookings.ListRiderBookings(ctx, id.SubjectID)
	if err != nil {
		return nil, err
	}
	return r.bookingList(list), nil
}

func (r *Resolver) Payment(ctx context.Context, args struct{ BookingID graphql.ID }) (*paymentResolver, error) {
	id, err := caller(ctx, "payment")
	if err != nil {
		return nil, err
	}
	p, err := r.payments.GetPayment(ctx, id.SubjectID, idValue(args.BookingID))
	if err != nil {
		return nil, err
	}
	return &paymentResolver{p: p}, nil
}

type reviewsForUserArgs struct {
	UserID graphql.ID
	Limit  *int32
}

func (r *Resolver) ReviewsForUser(ctx context.Context, args reviewsForUserArgs) ([]*reviewResolver, error) {
	list, err := r.reviews.ListReviewsForUser(ctx, idValue(args.UserID), int32Value(args.Limit))
	if err != nil {
		return nil, err
	}
	out := make([]*reviewResolver, len(list))
	for i, rv := range list {
		out[i] = &reviewResolver{r: rv}
	}
	return out, nil
}

type myNotificationsArgs struct {
	UnreadOnly *bool
	Limit      *int32
}

func (r *Resolver) MyNotifications(ctx context.Context, args myNotificationsArgs) ([]*notificationResolver, error) {
	id, err := caller(ctx, "myNotifications")
	if err != nil {
		return nil, err
	}
	unreadOnly := args.UnreadOnly != nil && *args.UnreadOnly
	list, err := r.notifications.ListNotifications(ctx, id.SubjectID, unreadOnly, int32Value(args.Limit))
	if err != nil {
		return nil, err
	}
	out := make([]*notificationResolver, len(list))
	for i, n := range list {
		out[i] = &notificationResolver{n: n}
	}
	return out, nil
}

func (r *Resolver) tripList(list []*models.Trip) []*tripResolver {
	out := make([]*tripResolver, len(list))
	for i, t := range list {
		out[i] = &tripResolver{t: t, root: r}
	}
	return out
}

func (r *Resolver) bookingList(list []*models.Booking) []*bookingResolver {
	out := make([]*bookingResolver, len(list))
	for i, b := range list {
		out[i] = &bookingResolver{b: b, root: r}
	}
	return out
}

package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/piresc/intercity/internal/pkg/auth"
	"github.com/piresc/intercity/services/bookings"
	"github.com/piresc/intercity/services/drivers"
	"github.com/piresc/intercity/services/notifications"
	"github.com/piresc/intercity/services/payments"
	"github.com/piresc/intercity/services/reviews"
	"github.com/piresc/intercity/services/trips"
	"github.com/piresc/intercity/services/users"
)

// Services bundles the usecases the resolvers delegate to
type Services struct {
	Users         users.UserUC
	Drivers       drivers.DriverUC
	Trips         trips.TripUC
	Bookings      bookings.BookingUC
	Payments      payments.PaymentUC
	Reviews       reviews.ReviewUC
	Notifications notifications.NotificationUC
}

// Resolver is the root resolver for Query and Mutation
type Resolver struct {
	users         users.UserUC
	drivers       drivers.DriverUC
	trips         trips.TripUC
	bookings      bookings.BookingUC
	payments      payments.PaymentUC
	reviews       reviews.ReviewUC
	notifications notifications.NotificationUC
}

// NewResolver creates the root resolver
func NewResolver(s Services) *Resolver {
	return &Resolver{
		users:         s.Users,
		drivers:       s.Drivers,
		trips:         s.Trips,
		bookings:      s.Bookings,
		payments:      s.Payments,
		reviews:       s.Reviews,
		notifications: s.Notifications,
	}
}

// caller returns the verified identity of the request
func caller(ctx context.Context, op string) (*auth.Identity, error) {
	return auth.RequireAuth(ctx, op)
}

func int32Value(v *int32) int {
	if v == nil {
		return 0
	}
	return int(*v)
}

func idValue(id graphql.ID) string {
	return string(id)
}

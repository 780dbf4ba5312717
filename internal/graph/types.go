package graph

import (
	"context"
	"encoding/json"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/auth"
	"github.com/piresc/intercity/internal/pkg/models"
)

type userResolver struct{ u *models.User }

func (r *userResolver) ID() graphql.ID          { return graphql.ID(r.u.ID) }
func (r *userResolver) Name() string            { return r.u.Name }
func (r *userResolver) Role() string            { return string(r.u.Role) }
func (r *userResolver) IsVerified() bool        { return r.u.IsVerified }
func (r *userResolver) IsActive() bool          { return r.u.IsActive }
func (r *userResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.u.CreatedAt} }
func (r *userResolver) UpdatedAt() graphql.Time { return graphql.Time{Time: r.u.UpdatedAt} }

// Email is contact data, visible to the user only
func (r *userResolver) Email(ctx context.Context) *string {
	if !isSelf(ctx, r.u.ID) {
		return nil
	}
	return &r.u.Email
}

// Phone is contact data, visible to the user only
func (r *userResolver) Phone(ctx context.Context) *string {
	if !isSelf(ctx, r.u.ID) {
		return nil
	}
	return r.u.Phone
}

func isSelf(ctx context.Context, userID string) bool {
	id, ok := auth.FromContext(ctx)
	return ok && id.SubjectID == userID
}

type driverProfileResolver struct{ p *models.DriverProfile }

func (r *driverProfileResolver) ID() graphql.ID     { return graphql.ID(r.p.ID) }
func (r *driverProfileResolver) UserID() graphql.ID { return graphql.ID(r.p.UserID) }

func (r *driverProfileResolver) LicenseNumber(ctx context.Context) *string {
	if !isSelf(ctx, r.p.UserID) {
		return nil
	}
	return &r.p.LicenseNumber
}

func (r *driverProfileResolver) LicenseExpiry() graphql.Time {
	return graphql.Time{Time: r.p.LicenseExpiry}
}
func (r *driverProfileResolver) BackgroundCheckStatus() string {
	return string(r.p.BackgroundCheckStatus)
}
func (r *driverProfileResolver) AverageRating() float64 { return r.p.AverageRating }
func (r *driverProfileResolver) TotalTrips() int32      { return int32(r.p.TotalTrips) }
func (r *driverProfileResolver) IsAvailable() bool      { return r.p.IsAvailable }
func (r *driverProfileResolver) VehicleID() *graphql.ID { return optionalID(r.p.VehicleID) }
func (r *driverProfileResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.p.CreatedAt}
}

type vehicleResolver struct{ v *models.Vehicle }

func (r *vehicleResolver) ID() graphql.ID          { return graphql.ID(r.v.ID) }
func (r *vehicleResolver) DriverID() graphql.ID    { return graphql.ID(r.v.DriverID) }
func (r *vehicleResolver) Make() string            { return r.v.Make }
func (r *vehicleResolver) Model() string           { return r.v.Model }
func (r *vehicleResolver) Year() int32             { return int32(r.v.Year) }
func (r *vehicleResolver) Color() string           { return r.v.Color }
func (r *vehicleResolver) LicensePlate() string    { return r.v.LicensePlate }
func (r *vehicleResolver) Capacity() int32         { return int32(r.v.Capacity) }
func (r *vehicleResolver) IsVerified() bool        { return r.v.IsVerified }
func (r *vehicleResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.v.CreatedAt} }

func (r *vehicleResolver) VehicleImages() []string {
	if r.v.Images == nil {
		return []string{}
	}
	return r.v.Images
}

type tripResolver struct {
	t    *models.Trip
	root *Resolver
}

func (r *tripResolver) ID() graphql.ID              { return graphql.ID(r.t.ID) }
func (r *tripResolver) DriverID() graphql.ID        { return graphql.ID(r.t.DriverID) }
func (r *tripResolver) OriginCity() string          { return r.t.OriginCity }
func (r *tripResolver) DestinationCity() string     { return r.t.DestinationCity }
func (r *tripResolver) OriginLat() float64          { return r.t.OriginLat }
func (r *tripResolver) OriginLng() float64          { return r.t.OriginLng }
func (r *tripResolver) DestinationLat() float64     { return r.t.DestinationLat }
func (r *tripResolver) DestinationLng() float64     { return r.t.DestinationLng }
func (r *tripResolver) OriginGeohash() string       { return r.t.OriginGeohash }
func (r *tripResolver) DestinationGeohash() string  { return r.t.DestinationGeohash }
func (r *tripResolver) DepartureTime() graphql.Time { return graphql.Time{Time: r.t.DepartureTime} }
func (r *tripResolver) ReturnTime() *graphql.Time   { return optionalTime(r.t.ReturnTime) }
func (r *tripResolver) SeatsAvailable() int32       { return int32(r.t.SeatsAvailable) }
func (r *tripResolver) PricePerSeat() float64       { return r.t.PricePerSeat }
func (r *tripResolver) Status() string              { return string(r.t.Status) }
func (r *tripResolver) TripType() string            { return string(r.t.TripType) }
func (r *tripResolver) CreatedAt() graphql.Time     { return graphql.Time{Time: r.t.CreatedAt} }
func (r *tripResolver) UpdatedAt() graphql.Time     { return graphql.Time{Time: r.t.UpdatedAt} }

// Driver resolves to null when the driver profile is gone
func (r *tripResolver) Driver(ctx context.Context) (*driverProfileResolver, error) {
	p, err := r.root.drivers.GetProfile(ctx, r.t.DriverID)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &driverProfileResolver{p: p}, nil
}

type bookingResolver struct {
	b    *models.Booking
	root *Resolver
}

func (r *bookingResolver) ID() graphql.ID            { return graphql.ID(r.b.ID) }
func (r *bookingResolver) TripID() graphql.ID        { return graphql.ID(r.b.TripID) }
func (r *bookingResolver) RiderID() graphql.ID       { return graphql.ID(r.b.RiderID) }
func (r *bookingResolver) SeatsBooked() int32        { return int32(r.b.SeatsBooked) }
func (r *bookingResolver) TotalAmount() float64      { return r.b.TotalAmount }
func (r *bookingResolver) CommissionAmount() float64 { return r.b.CommissionAmount }
func (r *bookingResolver) Status() string            { return string(r.b.Status) }
func (r *bookingResolver) PaymentStatus() string     { return string(r.b.PaymentStatus) }
func (r *bookingResolver) PickupLocation() *string   { return r.b.PickupLocation }
func (r *bookingResolver) PickupLat() *float64       { return r.b.PickupLat }
func (r *bookingResolver) PickupLng() *float64       { return r.b.PickupLng }
func (r *bookingResolver) CreatedAt() graphql.Time   { return graphql.Time{Time: r.b.CreatedAt} }
func (r *bookingResolver) UpdatedAt() graphql.Time   { return graphql.Time{Time: r.b.UpdatedAt} }

func (r *bookingResolver) Trip(ctx context.Context) (*tripResolver, error) {
	t, err := r.root.trips.GetTrip(ctx, r.b.TripID)
	if err != nil {
		return nil, err
	}
	return &tripResolver{t: t, root: r.root}, nil
}

type paymentResolver struct{ p *models.Payment }

func (r *paymentResolver) ID() graphql.ID                { return graphql.ID(r.p.ID) }
func (r *paymentResolver) BookingID() graphql.ID         { return graphql.ID(r.p.BookingID) }
func (r *paymentResolver) Amount() float64               { return r.p.Amount }
func (r *paymentResolver) Method() string                { return r.p.Method }
func (r *paymentResolver) Reference() string             { return r.p.Reference }
func (r *paymentResolver) GatewayTransactionID() *string { return r.p.GatewayTransactionID }
func (r *paymentResolver) AuthorizationURL() *string     { return r.p.AuthorizationURL }
func (r *paymentResolver) Status() string                { return string(r.p.Status) }
func (r *paymentResolver) CreatedAt() graphql.Time       { return graphql.Time{Time: r.p.CreatedAt} }
func (r *paymentResolver) UpdatedAt() graphql.Time       { return graphql.Time{Time: r.p.UpdatedAt} }

type reviewResolver struct{ r *models.Review }

func (r *reviewResolver) ID() graphql.ID          { return graphql.ID(r.r.ID) }
func (r *reviewResolver) BookingID() graphql.ID   { return graphql.ID(r.r.BookingID) }
func (r *reviewResolver) ReviewerID() graphql.ID  { return graphql.ID(r.r.ReviewerID) }
func (r *reviewResolver) RevieweeID() graphql.ID  { return graphql.ID(r.r.RevieweeID) }
func (r *reviewResolver) Rating() int32           { return int32(r.r.Rating) }
func (r *reviewResolver) Comment() *string        { return r.r.Comment }
func (r *reviewResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.r.CreatedAt} }

type notificationResolver struct{ n *models.Notification }

func (r *notificationResolver) ID() graphql.ID          { return graphql.ID(r.n.ID) }
func (r *notificationResolver) Title() string           { return r.n.Title }
func (r *notificationResolver) Message() string         { return r.n.Message }
func (r *notificationResolver) Type() string            { return r.n.Type }
func (r *notificationResolver) IsRead() bool            { return r.n.IsRead }
func (r *notificationResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.n.CreatedAt} }

func (r *notificationResolver) Metadata() *string {
	if len(r.n.Metadata) == 0 {
		return nil
	}
	raw, err := json.Marshal(r.n.Metadata)
	if err != nil {
		return nil
	}
	s := string(raw)
	return &s
}

func optionalID(s *string) *graphql.ID {
	if s == nil {
		return nil
	}
	id := graphql.ID(*s)
	return &id
}

func optionalTime(t *time.Time) *graphql.Time {
	if t == nil {
		return nil
	}
	return &graphql.Time{Time: *t}
}

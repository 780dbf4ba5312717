package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/piresc/intercity/internal/pkg/models"
)

type registerUserInput struct {
	Email *string
	Phone *string
	Name  string
	Role  string
}

func (r *Resolver) RegisterUser(ctx context.Context, args struct{ Input registerUserInput }) (*userResolver, error) {
	id, err := caller(ctx, "registerUser")
	if err != nil {
		return nil, err
	}
	u, err := r.users.RegisterUser(ctx, id.SubjectID, id.Email, models.RegisterUserRequest{
		Email: args.Input.Email,
		Phone: args.Input.Phone,
		Name:  args.Input.Name,
		Role:  models.UserRole(args.Input.Role),
	})
	if err != nil {
		return nil, err
	}
	return &userResolver{u: u}, nil
}

type updateProfileInput struct {
	Name  *string
	Phone *string
}

func (r *Resolver) UpdateProfile(ctx context.Context, args struct{ Input updateProfileInput }) (*userResolver, error) {
	id, err := caller(ctx, "updateProfile")
	if err != nil {
		return nil, err
	}
	u, err := r.users.UpdateProfile(ctx, id.SubjectID, models.UpdateProfileRequest{
		Name:  args.Input.Name,
		Phone: args.Input.Phone,
	})
	if err != nil {
		return nil, err
	}
	return &userResolver{u: u}, nil
}

type createDriverProfileInput struct {
	LicenseNumber string
	LicenseExpiry graphql.Time
}

func (r *Resolver) CreateDriverProfile(ctx context.Context, args struct{ Input createDriverProfileInput }) (*driverProfileResolver, error) {
	id, err := caller(ctx, "createDriverProfile")
	if err != nil {
		return nil, err
	}
	p, err := r.drivers.CreateProfile(ctx, id.SubjectID, models.CreateDriverProfileRequest{
		LicenseNumber: args.Input.LicenseNumber,
		LicenseExpiry: args.Input.LicenseExpiry.Time,
	})
	if err != nil {
		return nil, err
	}
	return &driverProfileResolver{p: p}, nil
}

func (r *Resolver) UpdateDriverAvailability(ctx context.Context, args struct{ Available bool }) (*driverProfileResolver, error) {
	id, err := caller(ctx, "updateDriverAvailability")
	if err != nil {
		return nil, err
	}
	p, err := r.drivers.UpdateAvailability(ctx, id.SubjectID, args.Available)
	if err != nil {
		return nil, err
	}
	return &driverProfileResolver{p: p}, nil
}

type createVehicleInput struct {
	Make          string
	Model         string
	Year          int32
	Color         string
	LicensePlate  string
	Capacity      int32
	VehicleImages *[]string
}

func (r *Resolver) CreateVehicle(ctx context.Context, args struct{ Input createVehicleInput }) (*vehicleResolver, error) {
	id, err := caller(ctx, "createVehicle")
	if err != nil {
		return nil, err
	}
	in := args.Input
	req := models.CreateVehicleRequest{
		Make:         in.Make,
		Model:        in.Model,
		Year:         int(in.Year),
		Color:        in.Color,
		LicensePlate: in.LicensePlate,
		Capacity:     int(in.Capacity),
	}
	if in.VehicleImages != nil {
		req.Images = *in.VehicleImages
	}

	v, err := r.drivers.CreateVehicle(ctx, id.SubjectID, req)
	if err != nil {
		return nil, err
	}
	return &vehicleResolver{v: v}, nil
}

func (r *Resolver) SetActiveVehicle(ctx context.Context, args struct{ ID graphql.ID }) (*driverProfileResolver, error) {
	id, err := caller(ctx, "setActiveVehicle")
	if err != nil {
		return nil, err
	}
	p, err := r.drivers.SetActiveVehicle(ctx, id.SubjectID, idValue(args.ID))
	if err != nil {
		return nil, err
	}
	return &driverProfileResolver{p: p}, nil
}

func (r *Resolver) DeleteVehicle(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	id, err := caller(ctx, "deleteVehicle")
	if err != nil {
		return false, err
	}
	return r.drivers.DeleteVehicle(ctx, id.SubjectID, idValue(args.ID))
}

type createTripInput struct {
	OriginCity      string
	DestinationCity string
	OriginLat       float64
	OriginLng       float64
	DestinationLat  float64
	DestinationLng  float64
	DepartureTime   graphql.Time
	ReturnTime      *graphql.Time
	SeatsAvailable  int32
	PricePerSeat    float64
	TripType        *string
}

func (r *Resolver) CreateTrip(ctx context.Context, args struct{ Input createTripInput }) (*tripResolver, error) {
	id, err := caller(ctx, "createTrip")
	if err != nil {
		return nil, err
	}
	in := args.Input
	req := models.CreateTripRequest{
		OriginCity:      in.OriginCity,
		DestinationCity: in.DestinationCity,
		OriginLat:       in.OriginLat,
		OriginLng:       in.OriginLng,
		DestinationLat:  in.DestinationLat,
		DestinationLng:  in.DestinationLng,
		DepartureTime:   in.DepartureTime.Time,
		SeatsAvailable:  int(in.SeatsAvailable),
		PricePerSeat:    in.PricePerSeat,
	}
	if in.ReturnTime != nil {
		rt := in.ReturnTime.Time
		req.ReturnTime = &rt
	}
	if in.TripType != nil {
		req.TripType = models.TripType(*in.TripType)
	}

	t, err := r.trips.CreateTrip(ctx, id.SubjectID, req)
	if err != nil {
		return nil, err
	}
	return &tripResolver{t: t, root: r}, nil
}

func (r *Resolver) StartTrip(ctx context.Context, args struct{ ID graphql.ID }) (*tripResolver, error) {
	return r.transitionTrip(ctx, "startTrip", args.ID, r.trips.StartTrip)
}

func (r *Resolver) CompleteTrip(ctx context.Context, args struct{ ID graphql.ID }) (*tripResolver, error) {
	return r.transitionTrip(ctx, "completeTrip", args.ID, r.trips.CompleteTrip)
}

func (r *Resolver) CancelTrip(ctx context.Context, args struct{ ID graphql.ID }) (*tripResolver, error) {
	return r.transitionTrip(ctx, "cancelTrip", args.ID, r.trips.CancelTrip)
}

func (r *Resolver) transitionTrip(
	ctx context.Context,
	op string,
	tripID graphql.ID,
	fn func(ctx context.Context, driverID, id string) (*models.Trip, error),
) (*tripResolver, error) {
	id, err := caller(ctx, op)
	if err != nil {
		return nil, err
	}
	t, err := fn(ctx, id.SubjectID, idValue(tripID))
	if err != nil {
		return nil, err
	}
	return &tripResolver{t: t, root: r}, nil
}

type createBookingInput struct {
	TripID         graphql.ID
	SeatsBooked    int32
	PickupLocation *string
	PickupLat      *float64
	PickupLng      *float64
}

func (r *Resolver) CreateBooking(ctx context.Context, args struct{ Input createBookingInput }) (*bookingResolver, error) {
	id, err := caller(ctx, "createBooking")
	if err != nil {
		return nil, err
	}
	b, err := r.bookings.CreateBooking(ctx, id.SubjectID, models.CreateBookingRequest{
		TripID:         idValue(args.Input.TripID),
		SeatsBooked:    int(args.Input.SeatsBooked),
		PickupLocation: args.Input.PickupLocation,
		PickupLat:      args.Input.PickupLat,
		PickupLng:      args.Input.PickupLng,
	})
	if err != nil {
		return nil, err
	}
	return &bookingResolver{b: b, root: r}, nil
}

func (r *Resolver) CancelBooking(ctx context.Context, args struct{ ID graphql.ID }) (*bookingResolver, error) {
	id, err := caller(ctx, "cancelBooking")
	if err != nil {
		return nil, err
	}
	b, err := r.bookings.CancelBooking(ctx, id.SubjectID, idValue(args.ID))
	if err != nil {
		return nil, err
	}
	return &bookingResolver{b: b, root: r}, nil
}

type initializePaymentArgs struct {
	BookingID graphql.ID
	Method    string
}

func (r *Resolver) InitializePayment(ctx context.Context, args initializePaymentArgs) (*paymentResolver, error) {
	id, err := caller(ctx, "initializePayment")
	if err != nil {
		return nil, err
	}
	p, err := r.payments.InitializePayment(ctx, id.SubjectID, id.Email, idValue(args.BookingID), args.Method)
	if err != nil {
		return nil, err
	}
	return &paymentResolver{p: p}, nil
}

func (r *Resolver) VerifyPayment(ctx context.Context, args struct{ Reference string }) (*paymentResolver, error) {
	id, err := caller(ctx, "verifyPayment")
	if err != nil {
		return nil, err
	}
	p, err := r.payments.VerifyPayment(ctx, id.SubjectID, args.Reference)
	if err != nil {
		return nil, err
	}
	return &paymentResolver{p: p}, nil
}

func (r *Resolver) RefundPayment(ctx context.Context, args struct{ BookingID graphql.ID }) (*paymentResolver, error) {
	id, err := caller(ctx, "refundPayment")
	if err != nil {
		return nil, err
	}
	p, err := r.payments.RefundPayment(ctx, id.SubjectID, idValue(args.BookingID))
	if err != nil {
		return nil, err
	}
	return &paymentResolver{p: p}, nil
}

type createReviewInput struct {
	BookingID graphql.ID
	Rating    int32
	Comment   *string
}

func (r *Resolver) CreateReview(ctx context.Context, args struct{ Input createReviewInput }) (*reviewResolver, error) {
	id, err := caller(ctx, "createReview")
	if err != nil {
		return nil, err
	}
	rv, err := r.reviews.CreateReview(ctx, id.SubjectID, models.CreateReviewRequest{
		BookingID: idValue(args.Input.BookingID),
		Rating:    int(args.Input.Rating),
		Comment:   args.Input.Comment,
	})
	if err != nil {
		return nil, err
	}
	return &reviewResolver{r: rv}, nil
}

func (r *Resolver) MarkNotificationRead(ctx context.Context, args struct{ ID graphql.ID }) (*notificationResolver, error) {
	id, err := caller(ctx, "markNotificationRead")
	if err != nil {
		return nil, err
	}
	n, err := r.notifications.MarkRead(ctx, id.SubjectID, idValue(args.ID))
	if err != nil {
		return nil, err
	}
	return &notificationResolver{n: n}, nil
}

func (r *Resolver) MarkAllNotificationsRead(ctx context.Context) (int32, error) {
	id, err := caller(ctx, "markAllNotificationsRead")
	if err != nil {
		return 0, err
	}
	n, err := r.notifications.MarkAllRead(ctx, id.SubjectID)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

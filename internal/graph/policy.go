package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/auth"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Level is the authentication a root field requires
type Level int

const (
	Public Level = iota
	Authenticated
	RiderOnly
	DriverOnly
)

func (l Level) String() string {
	switch l {
	case Public:
		return "public"
	case Authenticated:
		return "authenticated"
	case RiderOnly:
		return "rider"
	case DriverOnly:
		return "driver"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// DefaultPolicy maps every root field of the schema to its required level.
// Keys are "<Root>.<field>".
var DefaultPolicy = map[string]Level{
	"Query.me":              Authenticated,
	"Query.user":            Authenticated,
	"Query.driverProfile":   Public,
	"Query.myVehicles":      DriverOnly,
	"Query.trip":            Public,
	"Query.searchTrips":     Public,
	"Query.nearbyTrips":     Public,
	"Query.myTrips":         DriverOnly,
	"Query.tripBookings":    DriverOnly,
	"Query.booking":         Authenticated,
	"Query.myBookings":      Authenticated,
	"Query.payment":         Authenticated,
	"Query.reviewsForUser":  Public,
	"Query.myNotifications": Authenticated,

	"Mutation.registerUser":             Authenticated,
	"Mutation.updateProfile":            Authenticated,
	"Mutation.createDriverProfile":      Authenticated,
	"Mutation.updateDriverAvailability": DriverOnly,
	"Mutation.createVehicle":            DriverOnly,
	"Mutation.setActiveVehicle":         DriverOnly,
	"Mutation.deleteVehicle":            DriverOnly,
	"Mutation.createTrip":               DriverOnly,
	"Mutation.startTrip":                DriverOnly,
	"Mutation.completeTrip":             DriverOnly,
	"Mutation.cancelTrip":               DriverOnly,
	"Mutation.createBooking":            RiderOnly,
	"Mutation.cancelBooking":            RiderOnly,
	"Mutation.initializePayment":        RiderOnly,
	"Mutation.verifyPayment":            RiderOnly,
	"Mutation.refundPayment":            RiderOnly,
	"Mutation.createReview":             Authenticated,
	"Mutation.markNotificationRead":     Authenticated,
	"Mutation.markAllNotificationsRead": Authenticated,
}

// Policy checks a GraphQL document against per root field requirements
// before anything executes. Fields missing from the rules are denied.
type Policy struct {
	schema *ast.Schema
	rules  map[string]Level
}

// NewPolicy loads sdl and binds rules to it
func NewPolicy(sdl string, rules map[string]Level) (*Policy, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: sdl})
	if err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	return &Policy{schema: schema, rules: rules}, nil
}

// RootField is one top-level selection of an operation
type RootField struct {
	Key      string
	Name     string
	Position *ast.Position
}

// Operation is a validated operation ready for the policy check
type Operation struct {
	Kind   ast.Operation
	Fields []RootField
}

// Parse validates query against the schema and returns the selected
// operation with its root fields
func (p *Policy) Parse(query, operationName string) (*Operation, gqlerror.List) {
	doc, errs := gqlparser.LoadQuery(p.schema, query)
	if len(errs) > 0 {
		return nil, errs
	}

	op := doc.Operations.ForName(operationName)
	if op == nil {
		msg := "operation name is required when the document has several operations"
		if operationName != "" {
			msg = fmt.Sprintf("unknown operation %q", operationName)
		}
		return nil, gqlerror.List{gqlerror.Errorf("%s", msg)}
	}

	root := rootTypeName(op.Operation)
	var fields []RootField
	collectRootFields(op.SelectionSet, func(f *ast.Field) {
		fields = append(fields, RootField{
			Key:      root + "." + f.Name,
			Name:     f.Name,
			Position: f.Position,
		})
	})
	return &Operation{Kind: op.Operation, Fields: fields}, nil
}

// Authorize returns the first violation of op against the caller in ctx.
// Introspection fields are public.
func (p *Policy) Authorize(ctx context.Context, op *Operation) error {
	for _, f := range op.Fields {
		if strings.HasPrefix(f.Name, "__") {
			continue
		}

		level, ok := p.rules[f.Key]
		if !ok {
			return apperrors.InsufficientPermissions(f.Name, "operation is not permitted")
		}

		var err error
		switch level {
		case Public:
		case Authenticated:
			_, err = auth.RequireAuth(ctx, f.Name)
		case RiderOnly:
			_, err = auth.RequireRole(ctx, f.Name, models.RoleRider)
		case DriverOnly:
			_, err = auth.RequireRole(ctx, f.Name, models.RoleDriver)
		default:
			err = apperrors.InsufficientPermissions(f.Name, "operation is not permitted")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Uncovered returns root fields of the schema that have no rule, and
// rules that name no field of the schema
func (p *Policy) Uncovered() (missing, unknown []string) {
	fields := map[string]bool{}
	for _, def := range []*ast.Definition{p.schema.Query, p.schema.Mutation, p.schema.Subscription} {
		if def == nil {
			continue
		}
		for _, f := range def.Fields {
			if strings.HasPrefix(f.Name, "__") {
				continue
			}
			key := def.Name + "." + f.Name
			fields[key] = true
			if _, ok := p.rules[key]; !ok {
				missing = append(missing, key)
			}
		}
	}
	for key := range p.rules {
		if !fields[key] {
			unknown = append(unknown, key)
		}
	}
	return missing, unknown
}

func collectRootFields(set ast.SelectionSet, fn func(*ast.Field)) {
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			fn(s)
		case *ast.InlineFragment:
			collectRootFields(s.SelectionSet, fn)
		case *ast.FragmentSpread:
			if s.Definition != nil {
				collectRootFields(s.Definition.SelectionSet, fn)
			}
		}
	}
}

func rootTypeName(op ast.Operation) string {
	switch op {
	case ast.Mutation:
		return "Mutation"
	case ast.Subscription:
		return "Subscription"
	default:
		return "Query"
	}
}

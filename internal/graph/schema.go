package graph

import (
	"context"
	_ "embed"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/piresc/intercity/internal/pkg/apperrors"
)

// SDL is the GraphQL schema served at /graphql
//
//go:embed schema.graphql
var SDL string

// MaxQueryDepth bounds selection nesting
const MaxQueryDepth = 10

// NewSchema parses SDL and binds it to resolver
func NewSchema(resolver *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(SDL, resolver,
		graphql.MaxDepth(MaxQueryDepth),
		graphql.PanicHandler(panicHandler{}),
	)
}

type panicHandler struct{}

// MakePanicError turns a resolver panic into an internal error so the
// formatter classifies and redacts it like any other failure
func (panicHandler) MakePanicError(_ context.Context, value interface{}) *gqlerrors.QueryError {
	err := apperrors.Internal("resolver", fmt.Errorf("panic: %v", value))
	return &gqlerrors.QueryError{
		Message:       err.Error(),
		ResolverError: err,
	}
}

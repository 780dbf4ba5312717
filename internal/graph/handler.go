package graph

import (
	"encoding/json"
	"fmt"
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/labstack/echo/v4"
	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// CodeGraphQLValidation marks documents rejected before execution
const CodeGraphQLValidation = "GRAPHQL_VALIDATION_FAILED"

// Request is the GraphQL-over-HTTP request body
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Response is the GraphQL-over-HTTP response body
type Response struct {
	Data   json.RawMessage         `json:"data"`
	Errors []*gqlerrors.QueryError `json:"errors,omitempty"`
}

// Handler serves GraphQL over HTTP. Every document is validated and
// checked against the policy before any resolver runs.
type Handler struct {
	schema     *graphql.Schema
	policy     *Policy
	production bool
}

// NewHandler creates a GraphQL HTTP handler
func NewHandler(schema *graphql.Schema, policy *Policy, production bool) *Handler {
	return &Handler{
		schema:     schema,
		policy:     policy,
		production: production,
	}
}

// RegisterRoutes mounts the GraphQL endpoint on e
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/graphql", h.Serve)
	e.GET("/graphql", h.Serve)
}

// Serve executes one GraphQL request
func (h *Handler) Serve(c echo.Context) error {
	req, err := bindRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Response{Errors: []*gqlerrors.QueryError{
			validationError(err.Error()),
		}})
	}

	ctx := c.Request().Context()

	op, errs := h.policy.Parse(req.Query, req.OperationName)
	if len(errs) > 0 {
		logger.DebugCtx(ctx, "Rejected invalid GraphQL document", logger.Err(errs))
		return c.JSON(http.StatusOK, Response{Errors: fromGQLErrors(errs)})
	}
	if op.Kind == ast.Mutation && c.Request().Method != http.MethodPost {
		return c.JSON(http.StatusMethodNotAllowed, Response{Errors: []*gqlerrors.QueryError{
			validationError("mutations must be sent with POST"),
		}})
	}

	if err := h.policy.Authorize(ctx, op); err != nil {
		return c.JSON(http.StatusOK, Response{Errors: []*gqlerrors.QueryError{
			h.format(c, &gqlerrors.QueryError{Message: err.Error(), ResolverError: err}),
		}})
	}

	resp := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	for i, qe := range resp.Errors {
		resp.Errors[i] = h.format(c, qe)
	}
	return c.JSON(http.StatusOK, Response{Data: resp.Data, Errors: resp.Errors})
}

// format is the single place where resolver errors become client errors.
// The full error is logged; the client sees the classified message.
func (h *Handler) format(c echo.Context, qe *gqlerrors.QueryError) *gqlerrors.QueryError {
	ctx := c.Request().Context()

	if qe.ResolverError == nil {
		if qe.Extensions == nil {
			qe.Extensions = map[string]interface{}{
				"code":   CodeGraphQLValidation,
				"status": http.StatusBadRequest,
			}
		}
		return qe
	}

	ce := apperrors.Classify(qe.ResolverError, h.production)
	fields := []logger.Field{
		logger.String("code", ce.Code),
		logger.Int("status", ce.Status),
		logger.String("path", fmt.Sprint(qe.Path)),
		logger.Err(qe.ResolverError),
	}
	switch {
	case ce.Status >= http.StatusInternalServerError:
		logger.ErrorCtx(ctx, "GraphQL resolver failed", fields...)
	default:
		logger.WarnCtx(ctx, "GraphQL request rejected", fields...)
	}

	return &gqlerrors.QueryError{
		Message:   ce.Message,
		Locations: qe.Locations,
		Path:      qe.Path,
		Extensions: map[string]interface{}{
			"code":   ce.Code,
			"status": ce.Status,
		},
	}
}

func bindRequest(c echo.Context) (*Request, error) {
	var req Request
	if c.Request().Method == http.MethodGet {
		req.Query = c.QueryParam("query")
		req.OperationName = c.QueryParam("operationName")
		if raw := c.QueryParam("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return nil, fmt.Errorf("variables must be a JSON object")
			}
		}
	} else if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("request body must be a JSON object")
	}

	if req.Query == "" {
		return nil, fmt.Errorf("query is required")
	}
	return &req, nil
}

func validationError(msg string) *gqlerrors.QueryError {
	return &gqlerrors.QueryError{
		Message: msg,
		Extensions: map[string]interface{}{
			"code":   CodeGraphQLValidation,
			"status": http.StatusBadRequest,
		},
	}
}

func fromGQLErrors(list gqlerror.List) []*gqlerrors.QueryError {
	out := make([]*gqlerrors.QueryError, 0, len(list))
	for _, e := range list {
		qe := validationError(e.Message)
		for _, loc := range e.Locations {
			qe.Locations = append(qe.Locations, gqlerrors.Location{Line: loc.Line, Column: loc.Column})
		}
		out = append(out, qe)
	}
	return out
}

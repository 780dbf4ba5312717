package apperrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
)

// Kind classifies a failure. NotFound and NotOwner are kept apart for logs
// and collapse into one client code.
type Kind string

const (
	KindAuthenticationRequired  Kind = "AUTHENTICATION_REQUIRED"
	KindInsufficientPermissions Kind = "INSUFFICIENT_PERMISSIONS"
	KindNotFound                Kind = "NOT_FOUND"
	KindNotOwner                Kind = "NOT_OWNER"
	KindConflict                Kind = "CONFLICT"
	KindValidation              Kind = "VALIDATION_ERROR"
	KindInvalidStateTransition  Kind = "INVALID_STATE_TRANSITION"
	KindCreationFailed          Kind = "CREATION_FAILED"
	KindInternal                Kind = "INTERNAL_ERROR"
)

// Client-facing codes
const (
	CodeAuthenticationRequired  = "AUTHENTICATION_REQUIRED"
	CodeInsufficientPermissions = "INSUFFICIENT_PERMISSIONS"
	CodeNotFoundOrUnauthorized  = "NOT_FOUND_OR_UNAUTHORIZED"
	CodeConflict                = "CONFLICT"
	CodeValidation              = "VALIDATION_ERROR"
	CodeInvalidStateTransition  = "INVALID_STATE_TRANSITION"
	CodeCreationFailed          = "CREATION_FAILED"
	CodeInternal                = "INTERNAL_ERROR"
)

const uniqueViolation = "23505"

// Error is the typed error returned by usecases and the authorization guard
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Entity  string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind so callers can write errors.Is(err, apperrors.ErrNotFound)
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Message == "" && t.Entity == ""
}

// Sentinels for errors.Is comparisons
var (
	ErrAuthenticationRequired  = &Error{Kind: KindAuthenticationRequired}
	ErrInsufficientPermissions = &Error{Kind: KindInsufficientPermissions}
	ErrNotFound                = &Error{Kind: KindNotFound}
	ErrNotOwner                = &Error{Kind: KindNotOwner}
	ErrConflict                = &Error{Kind: KindConflict}
	ErrValidation              = &Error{Kind: KindValidation}
	ErrInvalidStateTransition  = &Error{Kind: KindInvalidStateTransition}
	ErrCreationFailed          = &Error{Kind: KindCreationFailed}
	ErrInternal                = &Error{Kind: KindInternal}
)

// AuthenticationRequired reports that no verified identity is present
func AuthenticationRequired(op string) *Error {
	return &Error{Kind: KindAuthenticationRequired, Op: op, Message: "authentication required"}
}

// InsufficientPermissions reports that the identity lacks a role
func InsufficientPermissions(op, message string) *Error {
	if message == "" {
		message = "insufficient permissions"
	}
	return &Error{Kind: KindInsufficientPermissions, Op: op, Message: message}
}

// NotFound reports a lookup or conditional write that matched no row
func NotFound(op, entity string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Entity: entity, Message: entity + " not found"}
}

// NotOwner reports a row that exists but belongs to someone else
func NotOwner(op, entity string) *Error {
	return &Error{Kind: KindNotOwner, Op: op, Entity: entity, Message: entity + " not owned by caller"}
}

// Conflict reports a uniqueness or duplicate-state violation
func Conflict(op, message string, err error) *Error {
	return &Error{Kind: KindConflict, Op: op, Message: message, Err: err}
}

// Validation reports caller input that fails a domain rule
func Validation(op, message string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: message}
}

// InvalidStateTransition reports a move the state machine does not allow
func InvalidStateTransition(op, entity string, from, to interface{}) *Error {
	return &Error{
		Kind:    KindInvalidStateTransition,
		Op:      op,
		Message: fmt.Sprintf("%s cannot move from %v to %v", entity, from, to),
	}
}

// CreationFailed reports an insert that returned no row
func CreationFailed(op, entity string) *Error {
	return &Error{Kind: KindCreationFailed, Op: op, Message: "failed to create " + entity}
}

// Internal wraps an unclassified failure
func Internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Op: op, Message: "internal error", Err: err}
}

// KindOf returns the kind of err, InternalError for anything untyped
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsUniqueViolation reports whether err is a postgres unique constraint violation
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}

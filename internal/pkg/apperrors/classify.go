package apperrors

import (
	"errors"
	"net/http"
)

// ClientError is the classified, environment-appropriate view of a failure
type ClientError struct {
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Code returns the client code for kind
func Code(kind Kind) string {
	switch kind {
	case KindAuthenticationRequired:
		return CodeAuthenticationRequired
	case KindInsufficientPermissions:
		return CodeInsufficientPermissions
	case KindNotFound, KindNotOwner:
		return CodeNotFoundOrUnauthorized
	case KindConflict:
		return CodeConflict
	case KindValidation:
		return CodeValidation
	case KindInvalidStateTransition:
		return CodeInvalidStateTransition
	case KindCreationFailed:
		return CodeCreationFailed
	default:
		return CodeInternal
	}
}

// Status returns the HTTP-equivalent status for kind
func Status(kind Kind) int {
	switch kind {
	case KindAuthenticationRequired:
		return http.StatusUnauthorized
	case KindInsufficientPermissions:
		return http.StatusForbidden
	case KindNotFound, KindNotOwner:
		return http.StatusNotFound
	case KindConflict, KindInvalidStateTransition:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Classify maps err to its client view. Internal and creation failures are
// redacted in production; everything else carries a message safe to show.
func Classify(err error, production bool) ClientError {
	kind := KindOf(err)
	ce := ClientError{
		Code:   Code(kind),
		Status: Status(kind),
	}

	var appErr *Error
	switch {
	case kind == KindNotFound || kind == KindNotOwner:
		ce.Message = "resource not found or unauthorized"
		if errors.As(err, &appErr) && appErr.Entity != "" {
			ce.Message = appErr.Entity + " not found or unauthorized"
		}
	case kind == KindInternal || kind == KindCreationFailed:
		if production {
			ce.Message = "internal server error"
		} else {
			ce.Message = err.Error()
		}
	default:
		ce.Message = err.Error()
		if errors.As(err, &appErr) {
			ce.Message = appErr.Message
		}
	}

	return ce
}

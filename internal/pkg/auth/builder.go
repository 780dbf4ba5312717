package auth

import (
	"context"
	"regexp"

	"github.com/piresc/intercity/internal/pkg/logger"
)

var bearerPattern = regexp.MustCompile(`^Bearer (\S+)$`)

// ContextBuilder derives the per-request identity from the Authorization header
type ContextBuilder struct {
	verifier TokenVerifier
}

// NewContextBuilder creates a builder backed by verifier
func NewContextBuilder(verifier TokenVerifier) *ContextBuilder {
	return &ContextBuilder{verifier: verifier}
}

// BearerToken extracts the token from an Authorization header value
func BearerToken(header string) (string, bool) {
	m := bearerPattern.FindStringSubmatch(header)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Build returns ctx carrying the verified identity, or ctx unchanged when
// the header is missing, malformed or fails verification.
func (b *ContextBuilder) Build(ctx context.Context, authorization string) context.Context {
	token, ok := BearerToken(authorization)
	if !ok {
		if authorization != "" {
			logger.DebugCtx(ctx, "Ignoring malformed authorization header")
		}
		return ctx
	}

	id, err := b.verifier.VerifyToken(ctx, token)
	if err != nil {
		logger.WarnCtx(ctx, "Token verification failed", logger.Err(err))
		return ctx
	}

	logger.DebugCtx(ctx, "Authenticated request", logger.String("subject_id", id.SubjectID))
	return WithIdentity(ctx, id)
}

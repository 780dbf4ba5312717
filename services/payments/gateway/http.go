package gateway

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/url"

	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/intercity/internal/pkg/http"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/piresc/intercity/internal/pkg/retry"
)

// HTTPGateway implements payments.PaymentGW against the gateway's REST API.
// Every call goes through one breaker so an unavailable gateway fails fast.
type HTTPGateway struct {
	client  *httpclient.Client
	retrier *retry.Retrier
	breaker *circuitbreaker.Breaker
}

// NewHTTPGateway creates a gateway client from cfg
func NewHTTPGateway(cfg models.PaymentGatewayConfig) *HTTPGateway {
	retryCfg := retry.DefaultConfig()
	retryCfg.IsRetryable = isTemporary

	breakerCfg := circuitbreaker.DefaultConfig("payment-gateway")
	breakerCfg.IsFailure = isTemporary

	return &HTTPGateway{
		client: httpclient.NewClient(httpclient.Config{
			BaseURL:     cfg.URL,
			Timeout:     cfg.Timeout,
			BearerToken: cfg.Secret,
		}),
		retrier: retry.New(retryCfg),
		breaker: circuitbreaker.New(breakerCfg, nil),
	}
}

// InitializeCharge opens a charge. It is not retried: a retry after a
// lost response would collide with the reference already stored upstream.
func (g *HTTPGateway) InitializeCharge(ctx context.Context, req models.ChargeRequest) (*models.ChargeResult, error) {
	var result models.ChargeResult
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.PostJSON(ctx, "/v1/charges", req, &result)
	})
	if err != nil {
		return nil, g.mapError("initializeCharge", err)
	}
	return &result, nil
}

// VerifyCharge reads the current charge outcome, retrying transient failures
func (g *HTTPGateway) VerifyCharge(ctx context.Context, reference string) (*models.ChargeResult, error) {
	var result models.ChargeResult
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			return g.client.GetJSON(ctx, chargePath(reference), &result)
		})
	})
	if err != nil {
		return nil, g.mapError("verifyCharge", err)
	}
	return &result, nil
}

// RefundCharge refunds a successful charge
func (g *HTTPGateway) RefundCharge(ctx context.Context, reference string) (*models.ChargeResult, error) {
	var result models.ChargeResult
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.PostJSON(ctx, chargePath(reference)+"/refund", nil, &result)
	})
	if err != nil {
		return nil, g.mapError("refundCharge", err)
	}
	return &result, nil
}

func (g *HTTPGateway) mapError(op string, err error) error {
	switch httpclient.StatusCode(err) {
	case nethttp.StatusNotFound:
		return apperrors.NotFound(op, "charge")
	case nethttp.StatusConflict:
		return apperrors.Conflict(op, "payment gateway rejected the charge state change", err)
	}
	return apperrors.Internal(op, fmt.Errorf("payment gateway: %w", err))
}

func chargePath(reference string) string {
	return "/v1/charges/" + url.PathEscape(reference)
}

// isTemporary retries network failures and upstream 5xx/429 responses
func isTemporary(err error) bool {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Temporary()
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

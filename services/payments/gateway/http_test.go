package gateway

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/piresc/intercity/internal/paygate"
	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/circuitbreaker"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/piresc/intercity/internal/pkg/retry"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSandbox(t *testing.T, secret string) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)
	srv := httptest.NewServer(paygate.NewRouter(paygate.Config{Secret: secret}, paygate.NewStore(), log))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPGateway_AgainstSandbox(t *testing.T) {
	srv := newSandbox(t, "s3cret")
	gw := NewHTTPGateway(models.PaymentGatewayConfig{URL: srv.URL, Secret: "s3cret", Timeout: time.Second})
	ctx := context.Background()

	created, err := gw.InitializeCharge(ctx, models.ChargeRequest{Reference: "ICT-abc", Amount: 250, Method: "card"})
	require.NoError(t, err)
	assert.Equal(t, models.ChargeStatusPending, created.Status)
	assert.Equal(t, "ICT-abc", created.Reference)

	verified, err := gw.VerifyCharge(ctx, "ICT-abc")
	require.NoError(t, err)
	assert.Equal(t, models.ChargeStatusPending, verified.Status)

	_, err = gw.RefundCharge(ctx, "ICT-abc")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/charges/ICT-abc/complete", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer s3cret")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	verified, err = gw.VerifyCharge(ctx, "ICT-abc")
	require.NoError(t, err)
	assert.Equal(t, models.ChargeStatusSuccess, verified.Status)

	refunded, err := gw.RefundCharge(ctx, "ICT-abc")
	require.NoError(t, err)
	assert.Equal(t, models.ChargeStatusRefunded, refunded.Status)

	_, err = gw.VerifyCharge(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestHTTPGateway_WrongSecret(t *testing.T) {
	srv := newSandbox(t, "s3cret")
	gw := NewHTTPGateway(models.PaymentGatewayConfig{URL: srv.URL, Secret: "nope"})

	_, err := gw.InitializeCharge(context.Background(), models.ChargeRequest{Reference: "r", Amount: 1})
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

func TestHTTPGateway_VerifyRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reference":"ICT-1","status":"success","amount":10}`))
	}))
	defer srv.Close()

	gw := NewHTTPGateway(models.PaymentGatewayConfig{URL: srv.URL})
	gw.retrier = retry.New(retry.Config{MaxRetries: 3, BaseDelay: time.Millisecond, Multiplier: 1, IsRetryable: isTemporary})

	result, err := gw.VerifyCharge(context.Background(), "ICT-1")
	require.NoError(t, err)
	assert.Equal(t, models.ChargeStatusSuccess, result.Status)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestHTTPGateway_VerifyDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	gw := NewHTTPGateway(models.PaymentGatewayConfig{URL: srv.URL})
	gw.retrier = retry.New(retry.Config{MaxRetries: 3, BaseDelay: time.Millisecond, IsRetryable: isTemporary})

	_, err := gw.VerifyCharge(context.Background(), "ICT-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestHTTPGateway_BreakerStopsCallingFailingGateway(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	gw := NewHTTPGateway(models.PaymentGatewayConfig{URL: srv.URL})
	gw.breaker = circuitbreaker.New(circuitbreaker.Config{FailureThreshold: 2, Cooldown: time.Hour, IsFailure: isTemporary}, nil)

	for i := 0; i < 3; i++ {
		_, err := gw.InitializeCharge(context.Background(), models.ChargeRequest{Reference: "ICT-1", Amount: 1})
		assert.ErrorIs(t, err, apperrors.ErrInternal)
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, circuitbreaker.StateOpen, gw.breaker.State())
}

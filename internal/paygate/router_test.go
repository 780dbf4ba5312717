package paygate

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "sandbox-secret"

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewRouter(Config{Secret: testSecret, CheckoutURL: "http://paygate.local/"}, NewStore(), log)
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}, secret string) (*httptest.ResponseRecorder, models.ChargeResult) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("Authorization", "Bearer "+secret)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var result models.ChargeResult
	if rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	}
	return rec, result
}

func TestChargeLifecycle(t *testing.T) {
	r := setupRouter(t)
	charge := models.ChargeRequest{Reference: "ICT-1", Amount: 5000, Method: "card", Email: "rider@example.com"}

	rec, created := do(t, r, http.MethodPost, "/v1/charges", charge, testSecret)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.ChargeStatusPending, created.Status)
	assert.Equal(t, 5000.0, created.Amount)
	assert.Equal(t, "http://paygate.local/checkout/ICT-1", created.AuthorizationURL)
	assert.NotEmpty(t, created.GatewayTransactionID)

	rec, _ = do(t, r, http.MethodPost, "/v1/charges", charge, testSecret)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = do(t, r, http.MethodPost, "/v1/charges/ICT-1/refund", nil, testSecret)
	assert.Equal(t, http.StatusConflict, rec.Code, "pending charge cannot be refunded")

	rec, completed := do(t, r, http.MethodPost, "/v1/charges/ICT-1/complete", nil, testSecret)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ChargeStatusSuccess, completed.Status)

	rec, fetched := do(t, r, http.MethodGet, "/v1/charges/ICT-1", nil, testSecret)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ChargeStatusSuccess, fetched.Status)
	assert.Equal(t, created.GatewayTransactionID, fetched.GatewayTransactionID)

	rec, _ = do(t, r, http.MethodPost, "/v1/charges/ICT-1/fail", nil, testSecret)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, refunded := do(t, r, http.MethodPost, "/v1/charges/ICT-1/refund", nil, testSecret)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ChargeStatusRefunded, refunded.Status)
}

func TestChargeValidationAndAuth(t *testing.T) {
	r := setupRouter(t)

	rec, _ := do(t, r, http.MethodPost, "/v1/charges", models.ChargeRequest{Reference: "ICT-2", Amount: 100}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = do(t, r, http.MethodPost, "/v1/charges", models.ChargeRequest{Reference: "ICT-2", Amount: 100}, "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = do(t, r, http.MethodPost, "/v1/charges", models.ChargeRequest{Reference: "", Amount: 100}, testSecret)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, r, http.MethodPost, "/v1/charges", models.ChargeRequest{Reference: "ICT-3", Amount: 0}, testSecret)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, r, http.MethodGet, "/v1/charges/missing", nil, testSecret)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, r, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStoreFailFromPending(t *testing.T) {
	s := NewStore()
	_, err := s.Create(models.ChargeRequest{Reference: "r", Amount: 1}, "")
	require.NoError(t, err)

	c, err := s.Transition("r", models.ChargeStatusFailed, models.ChargeStatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.ChargeStatusFailed, c.Status)

	_, err = s.Transition("r", models.ChargeStatusSuccess, models.ChargeStatusPending)
	assert.ErrorIs(t, err, ErrChargeState)

	_, err = s.Transition("nope", models.ChargeStatusSuccess, models.ChargeStatusPending)
	assert.ErrorIs(t, err, ErrChargeNotFound)
}

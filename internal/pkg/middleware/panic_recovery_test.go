package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newBufferLogger(buf *bytes.Buffer) *logger.ZapLogger {
	config := zap.NewDevelopmentConfig()
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(config.EncoderConfig),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return logger.FromZap(zap.New(core))
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	var logBuffer bytes.Buffer
	zapLogger := newBufferLogger(&logBuffer)

	tests := []struct {
		name         string
		panicValue   interface{}
		expectInLogs []string
		setupContext func(c echo.Context)
	}{
		{
			name:         "string panic",
			panicValue:   "test panic message",
			expectInLogs: []string{"test panic message", "stack_trace", "Panic recovered during request processing"},
		},
		{
			name:         "error panic",
			panicValue:   fmt.Errorf("test error panic"),
			expectInLogs: []string{"test error panic", "*errors.errorString"},
		},
		{
			name:         "panic with user context",
			panicValue:   "user context panic",
			expectInLogs: []string{"user context panic", "user123"},
			setupContext: func(c echo.Context) {
				c.Set("user_id", "user123")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logBuffer.Reset()
			e := echo.New()

			panicHandler := func(c echo.Context) error {
				if tt.setupContext != nil {
					tt.setupContext(c)
				}
				panic(tt.panicValue)
			}
			handler := PanicRecoveryMiddleware(zapLogger)(panicHandler)

			req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
			req.Header.Set("User-Agent", "test-agent")
			req.Header.Set(echo.HeaderXRequestID, "req-1")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.NoError(t, handler(c))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "Internal Server Error", response["error"])
			assert.Equal(t, "req-1", response["request_id"])

			logOutput := logBuffer.String()
			for _, expected := range tt.expectInLogs {
				assert.Contains(t, logOutput, expected)
			}
			assert.Contains(t, logOutput, "/graphql")
			assert.Contains(t, logOutput, "test-agent")
		})
	}
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(nil)
	})
}

package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		handlerStatus int
		handlerBody   string
	}{
		{
			name:          "created response",
			handlerStatus: http.StatusCreated,
			handlerBody:   `{"id":1,"description":"alice created"}`,
		},
		{
			name:          "bad request",
			handlerStatus: http.StatusBadRequest,
			handlerBody:   `{"id":88,"description":"Syntax error in the body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)

			var seenID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(zap.New(core).Sugar())(next)

			req := httptest.NewRequest(http.MethodPost, "/users", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			bodyBytes, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.handlerBody, string(bodyBytes))

			reqID := rr.Header().Get(RequestIDHeader)
			_, err := uuid.Parse(reqID)
			assert.NoError(t, err)
			assert.Equal(t, reqID, seenID)

			require.Equal(t, 1, logs.Len())
			fields := logs.All()[0].ContextMap()
			assert.Equal(t, reqID, fields["request_id"])
			assert.EqualValues(t, tt.handlerStatus, fields["status"])
			assert.EqualValues(t, len(tt.handlerBody), fields["response_size"])
		})
	}
}

func TestLoggingMiddleware_ReusesIncomingRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	handler := LoggingMiddleware(zap.NewNop().Sugar())(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/gw-greeter/internal/logger"
	"github.com/sbilibin2017/gw-greeter/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	writeJSON(rr, http.StatusCreated, models.StatusMessage{ID: StatusIDCreated, Description: "alice created"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1,"description":"alice created"}`, rr.Body.String())
}

func TestWriteJSON_LogsWriteError(t *testing.T) {
	originalLog := logger.Log
	defer func() { logger.Log = originalLog }()

	core, logs := observer.New(zap.DebugLevel)
	logger.Log = zap.New(core).Sugar()

	w := brokenWriter{httptest.NewRecorder()}
	writeJSON(w, http.StatusBadRequest, RejectionUnknown.StatusMessage())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "failed to write response", entry.Message)
	assert.EqualValues(t, http.StatusBadRequest, entry.ContextMap()["status"])
	assert.Equal(t, "broken pipe", entry.ContextMap()["err"])
}

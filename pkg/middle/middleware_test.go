package middle

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	id := rec.Header().Get("X-Request-ID")
	assert.True(t, strings.HasPrefix(id, "req-"))
	assert.Equal(t, id, seen)
}

func TestLoggingMiddleware_RecoversPanic(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h := LoggingMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rna/URS0000000001", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("Internal Server Error").Len())
	completed := logs.FilterMessage("Request completed").All()
	if assert.Len(t, completed, 1) {
		assert.EqualValues(t, http.StatusInternalServerError, completed[0].ContextMap()["status"])
	}
}

func TestLoggingMiddleware_UsesRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	h := RequestIDMiddleware(logger)(LoggingMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.FilterMessage("Request completed").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, rec.Header().Get("X-Request-ID"), entries[0].ContextMap()["request_id"])
		assert.EqualValues(t, http.StatusNotFound, entries[0].ContextMap()["status"])
	}
}

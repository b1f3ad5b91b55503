// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/wastewise/internal/platform/ctxutil"
	"github.com/taibuivan/wastewise/internal/platform/middleware"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

/*
TestRequestID verifies a caller's ID is reused and a missing one is minted.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.GetRequestID(r.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "abc")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", recorder.Header().Get("X-Request-ID"))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))
}

/*
TestCORS verifies the allow-list and the credentialed preflight.
*/
func TestCORS(t *testing.T) {
	handler := middleware.CORS([]string{"https://app.wastewise.in"})(okHandler)

	t.Run("Allowed preflight", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodOptions, "/api/v1/users/login", nil)
		request.Header.Set("Origin", "https://app.wastewise.in")
		request.Header.Set("Access-Control-Request-Method", http.MethodPost)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Equal(t, "https://app.wastewise.in", recorder.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", recorder.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Foreign origin", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/health", nil)
		request.Header.Set("Origin", "https://evil.example")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Wildcard echoes origin", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/health", nil)
		request.Header.Set("Origin", "http://localhost:5173")
		recorder := httptest.NewRecorder()

		middleware.CORS([]string{"*"})(okHandler).ServeHTTP(recorder, request)

		assert.Equal(t, "http://localhost:5173", recorder.Header().Get("Access-Control-Allow-Origin"))
	})
}

/*
TestRateLimit verifies the burst is honoured per client IP.
*/
func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 1, 2)(okHandler)

	codes := make([]int, 0, 3)
	for range 3 {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.RemoteAddr = "10.0.0.1:5555"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		codes = append(codes, recorder.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.2:5555"
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, other)
	assert.Equal(t, http.StatusOK, recorder.Code)

	t.Run("rotating forwarding headers share the connection's bucket", func(t *testing.T) {
		for i, forwarded := range []string{"203.0.113.1", "203.0.113.2"} {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.RemoteAddr = "10.0.0.1:6666"
			request.Header.Set("X-Forwarded-For", forwarded)
			request.Header.Set("X-Real-IP", forwarded)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)
			assert.Equal(t, http.StatusTooManyRequests, recorder.Code, "request %d", i)
		}
	})
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"success":false`)
}

/*
TestRealIP verifies forwarding headers are ignored unless chi's RealIP
middleware rewrote the remote address first.
*/
func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	request.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "192.0.2.1", middleware.RealIP(request))

	var seen string
	chimw.RealIP(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RealIP(r)
	})).ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "198.51.100.2", seen)
}

/*
TestMetrics verifies samples are labelled with the route pattern.
*/
func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := middleware.NewHTTPMetrics(registry)

	router := chi.NewRouter()
	router.Use(middleware.Metrics(metrics))
	router.Get("/facility/{id}/feedback", okHandler)

	for _, path := range []string{"/facility/a/feedback", "/facility/b/feedback", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	count, err := testutil.GatherAndCount(registry, "wastewise_http_requests_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, count, "one series per route pattern and status")
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/wastewise/internal/api"
	"github.com/taibuivan/wastewise/internal/platform/config"
	"github.com/taibuivan/wastewise/internal/platform/respond"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	liveness, readiness := api.NewHealthHandlers(deps, discardLogger())
	stub := func(name string) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			respond.OK(writer, map[string]string{"router": name, "path": request.URL.Path}, "ok")
		})
	}

	cfg := &config.Config{ServerPort: "0", CORSOrigins: []string{"*"}}
	server := api.NewServer(ctx, cfg, discardLogger(), nil, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Users:      stub("users"),
		Facilities: stub("facility"),
	})
	return server.Handler()
}

func get(handler http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	_ = json.Unmarshal(recorder.Body.Bytes(), &body)
	return recorder, body
}

/*
TestServer_Routing verifies mounts, probes and the JSON 404.
*/
func TestServer_Routing(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	tests := []struct {
		name   string
		path   string
		status int
		router string
	}{
		{"liveness", "/health", http.StatusOK, ""},
		{"users mount", "/api/v1/users/current-user", http.StatusOK, "users"},
		{"facility mount", "/api/v1/facility/get-all-facilities", http.StatusOK, "facility"},
		{"unknown route", "/api/v2/nothing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, body := get(handler, tt.path)
			require.Equal(t, tt.status, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

			if tt.router != "" {
				data := body["data"].(map[string]any)
				assert.Equal(t, tt.router, data["router"])
			}
			if tt.status == http.StatusNotFound {
				assert.Equal(t, false, body["success"])
				assert.Nil(t, body["data"])
			}
		})
	}
}

/*
TestServer_Readiness verifies the probe reports each dependency.
*/
func TestServer_Readiness(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	broken := func(context.Context) error { return errors.New("connection refused") }

	t.Run("ready", func(t *testing.T) {
		handler := newTestServer(t, api.HealthDependencies{CheckDatabase: healthy, CheckCache: healthy})
		recorder, body := get(handler, "/ready")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "ready", body["data"].(map[string]any)["status"])
	})

	t.Run("degraded", func(t *testing.T) {
		handler := newTestServer(t, api.HealthDependencies{CheckDatabase: healthy, CheckCache: broken})
		recorder, body := get(handler, "/ready")

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		data := body["data"].(map[string]any)
		assert.Equal(t, "degraded", data["status"])
		assert.Len(t, data["checks"], 2)
	})
}

package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	organizerID = "6f1c2a8e-4b7d-4e0a-9c3f-1d2e3f4a5b6c"
	eventID     = "0b9d7f3e-2c1a-4d5e-8f6a-7b8c9d0e1f2a"
	categoryID  = "3c4d5e6f-7a8b-4c9d-8e0f-1a2b3c4d5e6f"
)

// serve routes req through a mux registered with pattern so PathValue works.
// A non-empty userID is placed in the request context as the authenticated caller.
func serve(t *testing.T, pattern string, handler http.HandlerFunc, req *http.Request, userID string) *httptest.ResponseRecorder {
	t.Helper()
	if userID != "" {
		req = req.WithContext(middleware.SetUserID(req.Context(), userID))
	}
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, handler)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// decodeEnvelope decodes the response envelope, decoding data into data when non-nil.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) *helpers.APIError {
	t.Helper()
	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env.Error
}

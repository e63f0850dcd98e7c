package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	userID string
	err    error
}

func (f *fakeTokenVerifier) Verify(_ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.userID, nil
}

const organizerID = "6f1c2a8e-4b7d-4e0a-9c3f-1d2e3f4a5b6c"

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		verifier      domain.TokenVerifier
		wantStatus    int
		nextCalled    bool
		wantContextID string
	}{
		{
			name:          "valid token sets caller id",
			authHeader:    "Bearer valid-token",
			verifier:      &fakeTokenVerifier{userID: organizerID},
			wantStatus:    http.StatusCreated,
			nextCalled:    true,
			wantContextID: organizerID,
		},
		{
			name:       "missing authorization header",
			verifier:   &fakeTokenVerifier{userID: organizerID},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic abc",
			verifier:   &fakeTokenVerifier{userID: organizerID},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			authHeader: "Bearer ",
			verifier:   &fakeTokenVerifier{userID: organizerID},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer expired",
			verifier:   &fakeTokenVerifier{err: errors.New("token is expired")},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var callerID string
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				callerID, _ = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusCreated)
			}
			handler := RequireAuth(tt.verifier, testLogger)(next)

			req := httptest.NewRequest(http.MethodPost, "/events", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()
			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			assert.Equal(t, tt.wantContextID, callerID)
			if !tt.nextCalled {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, helpers.ErrCodeUnauthorized, envelope.Error.Code)
			}
		})
	}
}

// fakeUserLookup implements domain.UserService for RequireRegisteredUser.
type fakeUserLookup struct {
	domain.UserService
	registered map[string]bool
	err        error
}

func (f *fakeUserLookup) GetUser(_ context.Context, id string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !f.registered[id] {
		return nil, domain.NotFoundError("user")
	}
	return &domain.User{ID: id}, nil
}

func TestRequireRegisteredUser(t *testing.T) {
	const strangerID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"

	tests := []struct {
		name       string
		callerID   string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "registered caller", callerID: organizerID, wantStatus: http.StatusNoContent},
		{name: "token subject never synced", callerID: strangerID, wantStatus: http.StatusForbidden, wantCode: helpers.ErrCodeForbidden},
		{name: "token subject not a user id", callerID: "user_2abc", err: domain.ValidationError("id", "invalid id"), wantStatus: http.StatusForbidden, wantCode: helpers.ErrCodeForbidden},
		{name: "no caller in context", wantStatus: http.StatusUnauthorized, wantCode: helpers.ErrCodeUnauthorized},
		{name: "user lookup failure", callerID: organizerID, err: domain.StoreError("GetUser", errors.New("connection reset")), wantStatus: http.StatusInternalServerError, wantCode: helpers.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserLookup{registered: map[string]bool{organizerID: true}, err: tt.err}
			nextCalled := false
			handler := RequireRegisteredUser(users)(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodDelete, "/events/"+organizerID, nil)
			if tt.callerID != "" {
				req = req.WithContext(SetUserID(req.Context(), tt.callerID))
			}
			rr := httptest.NewRecorder()
			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCode == "", nextCalled)
			if tt.wantCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
			}
		})
	}
}

func TestRequireWebhookSecret(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
	}{
		{name: "matching secret", secret: "whsec", header: "whsec", wantStatus: http.StatusOK},
		{name: "wrong secret", secret: "whsec", header: "nope", wantStatus: http.StatusUnauthorized},
		{name: "missing header", secret: "whsec", wantStatus: http.StatusUnauthorized},
		{name: "unconfigured secret rejects all", secret: "", header: "", wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireWebhookSecret(tt.secret, testLogger)(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodPost, "/users", nil)
			if tt.header != "" {
				req.Header.Set(WebhookSecretHeader, tt.header)
			}
			rr := httptest.NewRecorder()
			handler(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/authz"
	"github.com/hbnb-platform/hbnb-api/internal/mocks"
	"github.com/hbnb-platform/hbnb-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		authHeader     string
		token          string
		claims         *auth.Claims
		validateErr    error
		expectedStatus int
		expectedActor  authz.Actor
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			token:          "valid-token",
			claims:         &auth.Claims{UserID: userID, IsAdmin: true},
			expectedStatus: http.StatusOK,
			expectedActor:  authz.User(userID, true),
		},
		{
			name:           "lowercase scheme",
			authHeader:     "bearer valid-token",
			token:          "valid-token",
			claims:         &auth.Claims{UserID: userID},
			expectedStatus: http.StatusOK,
			expectedActor:  authz.User(userID, false),
		},
		{
			name:           "missing auth header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "basic scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			token:          "expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			token:          "invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unexpected validation failure",
			authHeader:     "Bearer some-token",
			token:          "some-token",
			validateErr:    assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.JWTService{}
			if tt.token != "" {
				jwtService.On("ValidateToken", mock.Anything, tt.token).Return(tt.claims, tt.validateErr).Once()
			}

			var captured authz.Actor
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured = authz.FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/places", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			NewAuthMiddleware(jwtService).Authenticate(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedActor, captured)
			}
			jwtService.AssertExpectations(t)
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	userID := uuid.New()
	jwtService := &mocks.JWTService{}
	jwtService.On("ValidateToken", mock.Anything, "good").Return(&auth.Claims{UserID: userID}, nil)
	jwtService.On("ValidateToken", mock.Anything, "bad").Return(nil, auth.ErrInvalidToken)

	var captured authz.Actor
	handler := NewAuthMiddleware(jwtService).OptionalAuthenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = authz.FromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		}))

	serve := func(header string) int {
		req := httptest.NewRequest(http.MethodPost, "/users", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	require.Equal(t, http.StatusNoContent, serve(""))
	assert.False(t, captured.Authenticated())

	require.Equal(t, http.StatusNoContent, serve("Bearer good"))
	assert.Equal(t, authz.User(userID, false), captured)

	assert.Equal(t, http.StatusUnauthorized, serve("Bearer bad"))
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("Bearer abc.def.ghi")
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"Bearer", "Bearer ", "Token abc", "Bearer a b"} {
		_, ok := bearerToken(header)
		assert.False(t, ok, header)
	}
}

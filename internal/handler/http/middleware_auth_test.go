package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/clinical-records/internal/app"
	"github.com/MKhiriev/clinical-records/internal/service"
	"github.com/MKhiriev/clinical-records/internal/utils"
	"github.com/MKhiriev/clinical-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- getTokenFromAuthHeader ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lowercase scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "extra parts", header: "Bearer a b", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth middleware ----

func executeAuth(h *Handler, tokenType models.TokenType, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(tokenType)(next).ServeHTTP(rr, req)
	return rr
}

func TestAuth_StoresTokenInContext(t *testing.T) {
	h := newTestHandler(&service.Services{})

	var gotToken models.Token
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken, _ = utils.GetTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, models.AccessToken, "Bearer "+validAccessToken, next)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testDoctorID, gotToken.DoctorID)
	assert.Equal(t, validAccessToken, gotToken.SignedString)
	assert.Equal(t, models.AccessToken, gotToken.Type)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		tokenType  models.TokenType
		header     string
		parseErr   error
		wantStatus int
		wantMsg    string
	}{
		{"no header", models.AccessToken, "", nil, http.StatusUnauthorized, app.MsgNotAuthorized},
		{"malformed header", models.AccessToken, "Token abc", nil, http.StatusUnauthorized, app.MsgNotAuthorized},
		{"invalid token", models.AccessToken, "Bearer forged", service.ErrNotAuthorized, http.StatusUnauthorized, app.MsgNotAuthorized},
		{"blacklist down", models.AccessToken, "Bearer abc", errors.New("db is gone"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				parseTokenFn: func(_ context.Context, _ string, expected models.TokenType) (models.Token, error) {
					assert.Equal(t, tt.tokenType, expected)
					return models.Token{}, tt.parseErr
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			nextCalled := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { nextCalled = true })

			rr := executeAuth(h, tt.tokenType, tt.header, next)

			assert.False(t, nextCalled)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rr))
		})
	}
}

func TestAuth_PassesExpectedType(t *testing.T) {
	h := newTestHandler(&service.Services{})
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	assert.Equal(t, http.StatusOK, executeAuth(h, models.RefreshToken, "Bearer valid.refresh.token", next).Code)
	assert.Equal(t, http.StatusUnauthorized, executeAuth(h, models.RefreshToken, "Bearer "+validAccessToken, next).Code)
}

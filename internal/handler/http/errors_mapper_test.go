package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/clinical-records/internal/app"
	"github.com/MKhiriev/clinical-records/internal/service"
	"github.com/MKhiriev/clinical-records/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"already exists", service.ErrResourceAlreadyExists, http.StatusBadRequest, app.MsgResourceAlreadyExists},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
		{"not found", service.ErrResourceNotFound, http.StatusNotFound, app.MsgResourceNotFound},
		{"not authorized", service.ErrNotAuthorized, http.StatusUnauthorized, app.MsgNotAuthorized},
		{"wrapped not found", fmt.Errorf("get patient 3: %w", service.ErrResourceNotFound), http.StatusNotFound, app.MsgResourceNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
		{"token creation", service.ErrTokenCreationFailed, http.StatusInternalServerError, app.MsgInternalServerError},
	}

	h := newTestHandler(&service.Services{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			h.writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
		})
	}
}

func TestWriteError_ValidationMessages(t *testing.T) {
	h := newTestHandler(&service.Services{})
	validationErr := validators.NewValidationError()
	validationErr.Add("document", "Missing data for required field.")
	validationErr.Add("gender", "Must be one of: female, male, other.")

	rec := httptest.NewRecorder()
	h.writeError(rec, httptest.NewRequest(http.MethodPost, "/pacients", nil), fmt.Errorf("load: %w", validationErr))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string][]string{
		"document": {"Missing data for required field."},
		"gender":   {"Must be one of: female, male, other."},
	}, fieldErrors(t, rec))
}

func TestPathID(t *testing.T) {
	_, err := pathID(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, service.ErrResourceNotFound)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestCallerToken_Missing(t *testing.T) {
	_, err := callerToken(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.ErrorIs(t, err, service.ErrNotAuthorized)
	assert.ErrorIs(t, err, ErrNoTokenInContext)
}

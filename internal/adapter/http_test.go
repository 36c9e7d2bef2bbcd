// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/clinical-records/internal/app"
	"github.com/MKhiriev/clinical-records/internal/config"
	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, env models.Response) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(env))
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:5000", want: "http://localhost:5000"},
		{raw: "https://records.example.com/", want: "https://records.example.com"},
		{raw: "  http://10.0.0.1:8080 ", want: "http://10.0.0.1:8080"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())

	assert.Error(t, err)
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var reg models.DoctorRegistration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reg))
		writeEnvelope(t, w, http.StatusCreated, models.Response{Success: true, Data: models.Doctor{ID: 1, Username: reg.Username}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	doctor, err := a.Register(context.Background(), models.DoctorRegistration{Username: "house", Password: "vicodin"})

	require.NoError(t, err)
	assert.Equal(t, models.Doctor{ID: 1, Username: "house"}, doctor)
}

func TestRegister_Duplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, http.StatusBadRequest, models.Response{Errors: app.MsgResourceAlreadyExists})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.DoctorRegistration{Username: "house"})

	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestLogin_StoresTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	tokens, err := a.Login(context.Background(), models.Credentials{Username: "house", Password: "vicodin"})

	require.NoError(t, err)
	assert.Equal(t, models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, tokens)
	assert.Equal(t, tokens, a.Tokens())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, http.StatusUnauthorized, models.Response{Errors: app.MsgInvalidCredentials})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "house", Password: "x"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, a.Tokens().AccessToken)
}

func TestLogout_ClearsTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/logout", r.URL.Path)
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Message: app.MsgLoggedOut})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{AccessToken: "access", RefreshToken: "refresh"})

	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, models.TokenPair{}, a.Tokens())
}

func TestRefresh_UsesRefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/refresh", r.URL.Path)
		assert.Equal(t, "Bearer refresh", r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.TokenPair{AccessToken: "access-2"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{AccessToken: "access-1", RefreshToken: "refresh"})

	tokens, err := a.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.TokenPair{AccessToken: "access-2", RefreshToken: "refresh"}, tokens)
}

func TestRefresh_WithoutLogin(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")

	_, err := a.Refresh(context.Background())

	assert.ErrorIs(t, err, ErrNoRefreshToken)
}

// ── resources ───────────────────────────────────────────────────────────────

func TestResourceRequests(t *testing.T) {
	type call struct {
		method string
		path   string
		body   string
	}
	var got call

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = call{method: r.Method, path: r.URL.Path, body: string(body)}
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: map[string]any{"id": 5}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{AccessToken: "access"})
	ctx := context.Background()
	phone := "555-0101"

	tests := []struct {
		name string
		do   func() error
		want call
	}{
		{"get doctor", func() error { _, err := a.GetDoctor(ctx, 5); return err }, call{http.MethodGet, "/doctors/5", ""}},
		{"delete doctor", func() error { return a.DeleteDoctor(ctx, 5) }, call{http.MethodDelete, "/doctors/5", ""}},
		{"create patient", func() error { _, err := a.CreatePatient(ctx, models.PatientInput{Document: "1"}); return err }, call{method: http.MethodPost, path: "/pacients"}},
		{"update patient", func() error { _, err := a.UpdatePatient(ctx, 5, models.PatientUpdate{Phone: &phone}); return err }, call{method: http.MethodPut, path: "/pacients/5"}},
		{"delete patient", func() error { return a.DeletePatient(ctx, 5) }, call{http.MethodDelete, "/pacients/5", ""}},
		{"get story", func() error { _, err := a.GetClinicalStory(ctx, 5); return err }, call{http.MethodGet, "/clinical_stories/5", ""}},
		{"delete story", func() error { return a.DeleteClinicalStory(ctx, 5) }, call{http.MethodDelete, "/clinical_stories/5", ""}},
		{"create allergy", func() error { _, err := a.CreateAllergy(ctx, models.AllergyInput{PatientID: 5, Name: "latex"}); return err }, call{method: http.MethodPost, path: "/allergies"}},
		{"get allergy", func() error { _, err := a.GetAllergy(ctx, 5); return err }, call{http.MethodGet, "/allergies/5", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.do())
			assert.Equal(t, tt.want.method, got.method)
			assert.Equal(t, tt.want.path, got.path)
			if tt.want.body != "" {
				assert.JSONEq(t, tt.want.body, got.body)
			}
		})
	}
}

func TestUpdatePatient_SendsOnlySetFields(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.Patient{ID: 5, Phone: "555-0101"}})
	}))
	defer srv.Close()

	phone := "555-0101"
	patient, err := newTestAdapter(t, srv.URL).UpdatePatient(context.Background(), 5, models.PatientUpdate{Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, "555-0101", patient.Phone)
	assert.Equal(t, "555-0101", body["phone"])
	assert.Nil(t, body["address"])
}

func TestGetPatient_DecodesRelations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.Patient{
			ID:              3,
			Allergies:       []models.Allergy{{ID: 1, PatientID: 3, Name: "latex"}},
			ClinicalStories: []models.ClinicalStory{{ID: 2, PatientID: 3, Reason: "fever"}},
		}})
	}))
	defer srv.Close()

	patient, err := newTestAdapter(t, srv.URL).GetPatient(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, patient.Allergies, 1)
	require.Len(t, patient.ClinicalStories, 1)
	assert.Equal(t, "fever", patient.ClinicalStories[0].Reason)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", version)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		errors any
		want   error
	}{
		{"validation", http.StatusBadRequest, map[string][]string{"name": {"Missing data for required field."}}, ErrValidation},
		{"duplicate", http.StatusBadRequest, app.MsgResourceAlreadyExists, ErrAlreadyExists},
		{"unauthorized", http.StatusUnauthorized, app.MsgNotAuthorized, ErrUnauthorized},
		{"not found", http.StatusNotFound, app.MsgResourceNotFound, ErrNotFound},
		{"internal", http.StatusInternalServerError, app.MsgInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeEnvelope(t, w, tt.status, models.Response{Errors: tt.errors})
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).GetAllergy(context.Background(), 1)

			assert.ErrorIs(t, err, tt.want)
			var respErr *ResponseError
			require.ErrorAs(t, err, &respErr)
			assert.Equal(t, tt.status, respErr.StatusCode)
		})
	}
}

func TestResponseError_Fields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, http.StatusBadRequest, models.Response{Errors: map[string][]string{"gender": {"Must be one of: female, male, other."}}})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreatePatient(context.Background(), models.PatientInput{})

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, map[string][]string{"gender": {"Must be one of: female, male, other."}}, respErr.Fields())
	assert.Empty(t, respErr.Message())
}

func TestErrorMapping_NonEnvelopeBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down\n"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetDoctor(context.Background(), 1)

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusBadGateway, respErr.StatusCode)
	assert.Equal(t, "upstream down", respErr.Message())
	assert.Nil(t, respErr.Unwrap())
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).GetDoctor(context.Background(), 1)

	require.Error(t, err)
	var respErr *ResponseError
	assert.False(t, errors.As(err, &respErr))
}

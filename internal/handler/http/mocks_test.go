package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/service"
	"github.com/MKhiriev/clinical-records/models"
	"github.com/stretchr/testify/require"
)

// Service mocks used by the handler tests. Each method field can be
// overridden per test case; calling an unset field panics.

type mockAuthService struct {
	registerDoctorFn func(ctx context.Context, registration models.DoctorRegistration) (models.Doctor, error)
	loginFn          func(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)
	parseTokenFn     func(ctx context.Context, tokenString string, expected models.TokenType) (models.Token, error)
	logoutFn         func(ctx context.Context, token models.Token) error
	refreshFn        func(ctx context.Context, refreshToken models.Token) (models.TokenPair, error)
}

func (m *mockAuthService) RegisterDoctor(ctx context.Context, registration models.DoctorRegistration) (models.Doctor, error) {
	return m.registerDoctorFn(ctx, registration)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string, expected models.TokenType) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString, expected)
}

func (m *mockAuthService) Logout(ctx context.Context, token models.Token) error {
	return m.logoutFn(ctx, token)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken models.Token) (models.TokenPair, error) {
	return m.refreshFn(ctx, refreshToken)
}

type mockDoctorService struct {
	getDoctorFn    func(ctx context.Context, id int64) (models.Doctor, error)
	updateDoctorFn func(ctx context.Context, callerID, id int64, update models.DoctorUpdate) (models.Doctor, error)
	deleteDoctorFn func(ctx context.Context, caller models.Token, id int64) error
}

func (m *mockDoctorService) GetDoctor(ctx context.Context, id int64) (models.Doctor, error) {
	return m.getDoctorFn(ctx, id)
}

func (m *mockDoctorService) UpdateDoctor(ctx context.Context, callerID, id int64, update models.DoctorUpdate) (models.Doctor, error) {
	return m.updateDoctorFn(ctx, callerID, id, update)
}

func (m *mockDoctorService) DeleteDoctor(ctx context.Context, caller models.Token, id int64) error {
	return m.deleteDoctorFn(ctx, caller, id)
}

type mockPatientService struct {
	createPatientFn func(ctx context.Context, doctorID int64, input models.PatientInput) (models.Patient, error)
	getPatientFn    func(ctx context.Context, id int64) (models.Patient, error)
	updatePatientFn func(ctx context.Context, id int64, update models.PatientUpdate) (models.Patient, error)
	deletePatientFn func(ctx context.Context, id int64) error
}

func (m *mockPatientService) CreatePatient(ctx context.Context, doctorID int64, input models.PatientInput) (models.Patient, error) {
	return m.createPatientFn(ctx, doctorID, input)
}

func (m *mockPatientService) GetPatient(ctx context.Context, id int64) (models.Patient, error) {
	return m.getPatientFn(ctx, id)
}

func (m *mockPatientService) UpdatePatient(ctx context.Context, id int64, update models.PatientUpdate) (models.Patient, error) {
	return m.updatePatientFn(ctx, id, update)
}

func (m *mockPatientService) DeletePatient(ctx context.Context, id int64) error {
	return m.deletePatientFn(ctx, id)
}

type mockClinicalStoryService struct {
	createFn func(ctx context.Context, doctorID int64, input models.ClinicalStoryInput) (models.ClinicalStory, error)
	getFn    func(ctx context.Context, id int64) (models.ClinicalStory, error)
	updateFn func(ctx context.Context, doctorID, id int64, update models.ClinicalStoryUpdate) (models.ClinicalStory, error)
	deleteFn func(ctx context.Context, doctorID, id int64) error
}

func (m *mockClinicalStoryService) CreateClinicalStory(ctx context.Context, doctorID int64, input models.ClinicalStoryInput) (models.ClinicalStory, error) {
	return m.createFn(ctx, doctorID, input)
}

func (m *mockClinicalStoryService) GetClinicalStory(ctx context.Context, id int64) (models.ClinicalStory, error) {
	return m.getFn(ctx, id)
}

func (m *mockClinicalStoryService) UpdateClinicalStory(ctx context.Context, doctorID, id int64, update models.ClinicalStoryUpdate) (models.ClinicalStory, error) {
	return m.updateFn(ctx, doctorID, id, update)
}

func (m *mockClinicalStoryService) DeleteClinicalStory(ctx context.Context, doctorID, id int64) error {
	return m.deleteFn(ctx, doctorID, id)
}

type mockAllergyService struct {
	createAllergyFn func(ctx context.Context, input models.AllergyInput) (models.Allergy, error)
	getAllergyFn    func(ctx context.Context, id int64) (models.Allergy, error)
	deleteAllergyFn func(ctx context.Context, id int64) error
}

func (m *mockAllergyService) CreateAllergy(ctx context.Context, input models.AllergyInput) (models.Allergy, error) {
	return m.createAllergyFn(ctx, input)
}

func (m *mockAllergyService) GetAllergy(ctx context.Context, id int64) (models.Allergy, error) {
	return m.getAllergyFn(ctx, id)
}

func (m *mockAllergyService) DeleteAllergy(ctx context.Context, id int64) error {
	return m.deleteAllergyFn(ctx, id)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testDoctorID is the doctor every authenticated test request acts as.
const testDoctorID int64 = 7

// validAccessToken is what the auth mock accepts as an access token.
const validAccessToken = "valid.access.token"

// acceptingAuth returns an AuthService mock whose ParseToken accepts
// validAccessToken (typed access) and "valid.refresh.token" (typed refresh).
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string, expected models.TokenType) (models.Token, error) {
			switch {
			case tokenString == validAccessToken && expected == models.AccessToken,
				tokenString == "valid.refresh.token" && expected == models.RefreshToken:
				return models.Token{SignedString: tokenString, DoctorID: testDoctorID, ID: "jti-" + string(expected), Type: expected}, nil
			default:
				return models.Token{}, service.ErrNotAuthorized
			}
		},
	}
}

func newTestHandler(svcs *service.Services) *Handler {
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = acceptingAuth()
	}
	return NewHandler(svcs, logger.Nop())
}

// envelope mirrors models.Response with raw payloads for precise assertions.
type envelope struct {
	Success bool            `json:"success"`
	Errors  json.RawMessage `json:"errors"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return env
}

// errorMessage returns the "errors" field of a failed envelope as a string.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	env := decodeEnvelope(t, rec)
	require.False(t, env.Success)
	var msg string
	require.NoError(t, json.Unmarshal(env.Errors, &msg), "errors: %s", env.Errors)
	return msg
}

// fieldErrors returns the "errors" field of a validation failure.
func fieldErrors(t *testing.T, rec *httptest.ResponseRecorder) map[string][]string {
	t.Helper()
	env := decodeEnvelope(t, rec)
	require.False(t, env.Success)
	var fields map[string][]string
	require.NoError(t, json.Unmarshal(env.Errors, &fields), "errors: %s", env.Errors)
	return fields
}

// decodeData unmarshals the "data" field of a successful envelope into dst.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success, "body: %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/clinical-records/internal/app"
	"github.com/MKhiriev/clinical-records/internal/service"
	"github.com/MKhiriev/clinical-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDoctor(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "missing", err: service.ErrResourceNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctors := &mockDoctorService{
				getDoctorFn: func(_ context.Context, id int64) (models.Doctor, error) {
					assert.Equal(t, int64(12), id)
					if tt.err != nil {
						return models.Doctor{}, tt.err
					}
					return models.Doctor{ID: id, Username: "wilson", PasswordHash: "$2a$secret"}, nil
				},
			}
			h := newTestHandler(&service.Services{DoctorService: doctors})

			rec := serve(h, http.MethodGet, "/doctors/12", "", validAccessToken)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.NotContains(t, rec.Body.String(), "$2a$secret")
			}
		})
	}
}

func TestUpdateDoctor_PassesCallerAndTarget(t *testing.T) {
	doctors := &mockDoctorService{
		updateDoctorFn: func(_ context.Context, callerID, id int64, update models.DoctorUpdate) (models.Doctor, error) {
			assert.Equal(t, testDoctorID, callerID)
			assert.Equal(t, testDoctorID, id)
			require.NotNil(t, update.Specialty)
			return models.Doctor{ID: id, Specialty: *update.Specialty}, nil
		},
	}
	h := newTestHandler(&service.Services{DoctorService: doctors})

	rec := serve(h, http.MethodPut, "/doctors/7", `{"specialty": "oncology"}`, validAccessToken)

	require.Equal(t, http.StatusOK, rec.Code)
	var doctor models.Doctor
	decodeData(t, rec, &doctor)
	assert.Equal(t, "oncology", doctor.Specialty)
}

func TestUpdateDoctor_OtherAccount(t *testing.T) {
	doctors := &mockDoctorService{
		updateDoctorFn: func(context.Context, int64, int64, models.DoctorUpdate) (models.Doctor, error) {
			return models.Doctor{}, service.ErrNotAuthorized
		},
	}
	h := newTestHandler(&service.Services{DoctorService: doctors})

	rec := serve(h, http.MethodPut, "/doctors/8", `{"first_name": "James"}`, validAccessToken)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgNotAuthorized, errorMessage(t, rec))
}

func TestUpdateDoctor_InvalidEmail(t *testing.T) {
	h := newTestHandler(&service.Services{DoctorService: &mockDoctorService{}})

	rec := serve(h, http.MethodPut, "/doctors/7", `{"email": "nope"}`, validAccessToken)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"Not a valid email address."}, fieldErrors(t, rec)["email"])
}

func TestDeleteDoctor(t *testing.T) {
	var gotCaller models.Token
	doctors := &mockDoctorService{
		deleteDoctorFn: func(_ context.Context, caller models.Token, id int64) error {
			gotCaller = caller
			assert.Equal(t, testDoctorID, id)
			return nil
		},
	}
	h := newTestHandler(&service.Services{DoctorService: doctors})

	rec := serve(h, http.MethodDelete, "/doctors/7", "", validAccessToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgDoctorDeleted, decodeEnvelope(t, rec).Message)
	assert.Equal(t, "jti-access", gotCaller.ID)
}

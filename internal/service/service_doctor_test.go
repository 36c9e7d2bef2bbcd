package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/mock"
	"github.com/MKhiriev/clinical-records/internal/store"
	"github.com/MKhiriev/clinical-records/internal/validators"
	"github.com/MKhiriev/clinical-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func newTestDoctorSvc(t *testing.T, ctrl *gomock.Controller) (DoctorService, *mock.MockDoctorRepository, *mock.MockBlacklist) {
	t.Helper()
	repo := mock.NewMockDoctorRepository(ctrl)
	blacklist := mock.NewMockBlacklist(ctrl)

	return NewDoctorService(repo, blacklist, testAppConfig(), logger.Nop()), repo, blacklist
}

func TestDoctorService_GetDoctor(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestDoctorSvc(t, ctrl)

	repo.EXPECT().GetDoctorByID(gomock.Any(), int64(1)).Return(models.Doctor{ID: 1, Username: "house"}, nil)
	repo.EXPECT().GetDoctorByID(gomock.Any(), int64(2)).Return(models.Doctor{}, store.ErrNotFound)

	doctor, err := svc.GetDoctor(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "house", doctor.Username)

	_, err = svc.GetDoctor(context.Background(), 2)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestDoctorService_UpdateDoctor_OtherDoctor(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestDoctorSvc(t, ctrl)

	_, err := svc.UpdateDoctor(context.Background(), 1, 2, models.DoctorUpdate{FirstName: strPtr("Lisa")})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestDoctorService_UpdateDoctor_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestDoctorSvc(t, ctrl)

	_, err := svc.UpdateDoctor(context.Background(), 1, 1, models.DoctorUpdate{})

	var validationErr *validators.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{validators.SchemaField}, validationErr.Fields())
}

func TestDoctorService_UpdateDoctor_HashesNewPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestDoctorSvc(t, ctrl)

	update := models.DoctorUpdate{Password: strPtr("new-password")}
	repo.EXPECT().UpdateDoctor(gomock.Any(), int64(1), update, gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64, _ models.DoctorUpdate, passwordHash string) (models.Doctor, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("new-password")))
			return models.Doctor{ID: id}, nil
		},
	)

	doctor, err := svc.UpdateDoctor(context.Background(), 1, 1, update)
	require.NoError(t, err)
	assert.Equal(t, int64(1), doctor.ID)
}

func TestDoctorService_UpdateDoctor_KeepsPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestDoctorSvc(t, ctrl)

	update := models.DoctorUpdate{Specialty: strPtr("nephrology")}
	repo.EXPECT().UpdateDoctor(gomock.Any(), int64(1), update, "").Return(models.Doctor{ID: 1, Specialty: "nephrology"}, nil)

	doctor, err := svc.UpdateDoctor(context.Background(), 1, 1, update)
	require.NoError(t, err)
	assert.Equal(t, "nephrology", doctor.Specialty)
}

func TestDoctorService_DeleteDoctor(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, blacklist := newTestDoctorSvc(t, ctrl)

	caller := models.Token{DoctorID: 4, ID: "jti-4", ExpiresAt: time.Now().Add(time.Minute)}
	gomock.InOrder(
		repo.EXPECT().DeleteDoctor(gomock.Any(), int64(4)).Return(nil),
		blacklist.EXPECT().Revoke(gomock.Any(), "jti-4", caller.ExpiresAt).Return(nil),
	)

	require.NoError(t, svc.DeleteDoctor(context.Background(), caller, 4))
}

func TestDoctorService_DeleteDoctor_OtherDoctor(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestDoctorSvc(t, ctrl)

	err := svc.DeleteDoctor(context.Background(), models.Token{DoctorID: 4, ID: "jti-4"}, 5)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestDoctorService_DeleteDoctor_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestDoctorSvc(t, ctrl)

	repo.EXPECT().DeleteDoctor(gomock.Any(), int64(4)).Return(store.ErrNotFound)

	err := svc.DeleteDoctor(context.Background(), models.Token{DoctorID: 4, ID: "jti-4"}, 4)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

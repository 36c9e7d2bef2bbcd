package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/clinical-records/models"
)

// AuthService registers doctors and manages the JWT lifecycle.
type AuthService interface {
	RegisterDoctor(ctx context.Context, registration models.DoctorRegistration) (models.Doctor, error)
	Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)

	// ParseToken validates a raw JWT, checks that it has the expected type and
	// that it was not revoked.
	ParseToken(ctx context.Context, tokenString string, expected models.TokenType) (models.Token, error)

	Logout(ctx context.Context, token models.Token) error
	Refresh(ctx context.Context, refreshToken models.Token) (models.TokenPair, error)
}

// DoctorService reads and changes doctor accounts. Changes are allowed only
// to the account owner.
type DoctorService interface {
	GetDoctor(ctx context.Context, id int64) (models.Doctor, error)
	UpdateDoctor(ctx context.Context, callerID, id int64, update models.DoctorUpdate) (models.Doctor, error)
	DeleteDoctor(ctx context.Context, caller models.Token, id int64) error
}

type PatientService interface {
	CreatePatient(ctx context.Context, doctorID int64, input models.PatientInput) (models.Patient, error)
	GetPatient(ctx context.Context, id int64) (models.Patient, error)
	UpdatePatient(ctx context.Context, id int64, update models.PatientUpdate) (models.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}

// ClinicalStoryService manages consultation notes. Only the author may update
// or delete a story.
type ClinicalStoryService interface {
	CreateClinicalStory(ctx context.Context, doctorID int64, input models.ClinicalStoryInput) (models.ClinicalStory, error)
	GetClinicalStory(ctx context.Context, id int64) (models.ClinicalStory, error)
	UpdateClinicalStory(ctx context.Context, doctorID, id int64, update models.ClinicalStoryUpdate) (models.ClinicalStory, error)
	DeleteClinicalStory(ctx context.Context, doctorID, id int64) error
}

type AllergyService interface {
	CreateAllergy(ctx context.Context, input models.AllergyInput) (models.Allergy, error)
	GetAllergy(ctx context.Context, id int64) (models.Allergy, error)
	DeleteAllergy(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Blacklist is the set of revoked token identifiers (jti).
type Blacklist interface {
	// Revoke adds jti to the set. expiresAt is the expiry of the revoked
	// token; the entry is useless after it.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// Purge drops entries that expired before now and returns their count.
	Purge(ctx context.Context, now time.Time) (int64, error)
}

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/clinical-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DoctorRepository persists doctor accounts.
type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor models.Doctor) (models.Doctor, error)
	GetDoctorByID(ctx context.Context, id int64) (models.Doctor, error)
	GetDoctorByUsername(ctx context.Context, username string) (models.Doctor, error)
	// UpdateDoctor writes the non-nil fields of update. passwordHash replaces
	// the stored hash when non-empty.
	UpdateDoctor(ctx context.Context, id int64, update models.DoctorUpdate, passwordHash string) (models.Doctor, error)
	DeleteDoctor(ctx context.Context, id int64) error
}

// PatientRepository persists patients. CreatePatient stores inline allergies
// in the same transaction.
type PatientRepository interface {
	CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error)
	// GetPatientByID returns the patient with its allergies and clinical stories.
	GetPatientByID(ctx context.Context, id int64) (models.Patient, error)
	UpdatePatient(ctx context.Context, id int64, update models.PatientUpdate) (models.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}

// ClinicalStoryRepository persists clinical stories.
type ClinicalStoryRepository interface {
	CreateClinicalStory(ctx context.Context, story models.ClinicalStory) (models.ClinicalStory, error)
	GetClinicalStoryByID(ctx context.Context, id int64) (models.ClinicalStory, error)
	UpdateClinicalStory(ctx context.Context, id int64, update models.ClinicalStoryUpdate) (models.ClinicalStory, error)
	DeleteClinicalStory(ctx context.Context, id int64) error
}

// AllergyRepository persists allergies.
type AllergyRepository interface {
	CreateAllergy(ctx context.Context, allergy models.Allergy) (models.Allergy, error)
	GetAllergyByID(ctx context.Context, id int64) (models.Allergy, error)
	DeleteAllergy(ctx context.Context, id int64) error
}

// RevokedTokenRepository persists the token blacklist.
type RevokedTokenRepository interface {
	// RevokeToken stores jti. Revoking the same jti twice is not an error.
	RevokeToken(ctx context.Context, token models.RevokedToken) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
	// PurgeExpired removes entries that expired before now and returns how
	// many were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

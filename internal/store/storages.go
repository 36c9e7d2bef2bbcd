package store

import (
	"context"

	"github.com/MKhiriev/clinical-records/internal/config"
	"github.com/MKhiriev/clinical-records/internal/logger"
)

// Storages groups every repository of the service over one database.
type Storages struct {
	DoctorRepository        DoctorRepository
	PatientRepository       PatientRepository
	ClinicalStoryRepository ClinicalStoryRepository
	AllergyRepository       AllergyRepository
	RevokedTokenRepository  RevokedTokenRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DoctorRepository:        NewDoctorRepository(db, log),
		PatientRepository:       NewPatientRepository(db, log),
		ClinicalStoryRepository: NewClinicalStoryRepository(db, log),
		AllergyRepository:       NewAllergyRepository(db, log),
		RevokedTokenRepository:  NewRevokedTokenRepository(db, log),
		db:                      db,
	}
}

// Close closes the underlying database.
func (s *Storages) Close() error {
	return s.db.Close()
}

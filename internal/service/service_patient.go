package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/store"
	"github.com/MKhiriev/clinical-records/internal/validators"
	"github.com/MKhiriev/clinical-records/models"
)

type patientService struct {
	patientRepository store.PatientRepository

	logger *logger.Logger
}

func NewPatientService(patientRepository store.PatientRepository, logger *logger.Logger) PatientService {
	return &patientService{
		patientRepository: patientRepository,
		logger:            logger,
	}
}

// CreatePatient stores a new patient registered by doctorID together with the
// allergies declared inline.
func (p *patientService) CreatePatient(ctx context.Context, doctorID int64, input models.PatientInput) (models.Patient, error) {
	patient := models.Patient{
		Document:  input.Document,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		BirthDate: input.BirthDate,
		Gender:    input.Gender,
		Phone:     input.Phone,
		Address:   input.Address,
		BloodType: input.BloodType,
		CreatedBy: doctorID,
		Allergies: make([]models.Allergy, 0, len(input.Allergies)),
	}
	for _, allergy := range input.Allergies {
		patient.Allergies = append(patient.Allergies, models.Allergy{
			Name:     allergy.Name,
			Severity: allergy.Severity,
			Reaction: allergy.Reaction,
		})
	}

	created, err := p.patientRepository.CreatePatient(ctx, patient)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("document", input.Document).Msg("patient creation ended with error")
		return models.Patient{}, fmt.Errorf("patient creation ended with error: %w", mapStoreError(err))
	}

	return created, nil
}

// GetPatient returns the patient with its allergies and clinical stories.
func (p *patientService) GetPatient(ctx context.Context, id int64) (models.Patient, error) {
	patient, err := p.patientRepository.GetPatientByID(ctx, id)
	if err != nil {
		return models.Patient{}, fmt.Errorf("getting patient %d: %w", id, mapStoreError(err))
	}

	return patient, nil
}

func (p *patientService) UpdatePatient(ctx context.Context, id int64, update models.PatientUpdate) (models.Patient, error) {
	if update.IsEmpty() {
		return models.Patient{}, validators.NoInputDataError()
	}

	patient, err := p.patientRepository.UpdatePatient(ctx, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("patient_id", id).Msg("patient update ended with error")
		return models.Patient{}, fmt.Errorf("updating patient %d: %w", id, mapStoreError(err))
	}

	return patient, nil
}

// DeletePatient removes the patient. Its allergies and clinical stories are
// removed with it.
func (p *patientService) DeletePatient(ctx context.Context, id int64) error {
	if err := p.patientRepository.DeletePatient(ctx, id); err != nil {
		return fmt.Errorf("deleting patient %d: %w", id, mapStoreError(err))
	}

	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/store"
	"github.com/MKhiriev/clinical-records/models"
)

type allergyService struct {
	allergyRepository store.AllergyRepository

	logger *logger.Logger
}

func NewAllergyService(allergyRepository store.AllergyRepository, logger *logger.Logger) AllergyService {
	return &allergyService{
		allergyRepository: allergyRepository,
		logger:            logger,
	}
}

func (a *allergyService) CreateAllergy(ctx context.Context, input models.AllergyInput) (models.Allergy, error) {
	allergy, err := a.allergyRepository.CreateAllergy(ctx, models.Allergy{
		PatientID: input.PatientID,
		Name:      input.Name,
		Severity:  input.Severity,
		Reaction:  input.Reaction,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("patient_id", input.PatientID).Msg("allergy creation ended with error")
		return models.Allergy{}, fmt.Errorf("allergy creation ended with error: %w", mapStoreError(err))
	}

	return allergy, nil
}

func (a *allergyService) GetAllergy(ctx context.Context, id int64) (models.Allergy, error) {
	allergy, err := a.allergyRepository.GetAllergyByID(ctx, id)
	if err != nil {
		return models.Allergy{}, fmt.Errorf("getting allergy %d: %w", id, mapStoreError(err))
	}

	return allergy, nil
}

func (a *allergyService) DeleteAllergy(ctx context.Context, id int64) error {
	if err := a.allergyRepository.DeleteAllergy(ctx, id); err != nil {
		return fmt.Errorf("deleting allergy %d: %w", id, mapStoreError(err))
	}

	return nil
}

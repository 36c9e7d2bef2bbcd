// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/store"
	"github.com/MKhiriev/clinical-records/internal/validators"
	"github.com/MKhiriev/clinical-records/models"
	"github.com/microcosm-cc/bluemonday"
)

// clinicalStoryService keeps consultation notes. Descriptions are free text
// typed by doctors and are stripped of any HTML before they are stored.
type clinicalStoryService struct {
	clinicalStoryRepository store.ClinicalStoryRepository

	// sanitizer removes every HTML element from descriptions.
	sanitizer *bluemonday.Policy

	logger *logger.Logger
}

func NewClinicalStoryService(clinicalStoryRepository store.ClinicalStoryRepository, logger *logger.Logger) ClinicalStoryService {
	return &clinicalStoryService{
		clinicalStoryRepository: clinicalStoryRepository,
		sanitizer:               bluemonday.StrictPolicy(),
		logger:                  logger,
	}
}

// CreateClinicalStory stores a story authored by doctorID. A story for an
// unknown patient is ErrResourceNotFound.
func (c *clinicalStoryService) CreateClinicalStory(ctx context.Context, doctorID int64, input models.ClinicalStoryInput) (models.ClinicalStory, error) {
	description, err := c.sanitize(input.Description)
	if err != nil {
		return models.ClinicalStory{}, err
	}

	story, err := c.clinicalStoryRepository.CreateClinicalStory(ctx, models.ClinicalStory{
		PatientID:   input.PatientID,
		DoctorID:    doctorID,
		Reason:      input.Reason,
		Description: description,
		Diagnosis:   input.Diagnosis,
		Treatment:   input.Treatment,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("patient_id", input.PatientID).Msg("clinical story creation ended with error")
		return models.ClinicalStory{}, fmt.Errorf("clinical story creation ended with error: %w", mapStoreError(err))
	}

	return story, nil
}

func (c *clinicalStoryService) GetClinicalStory(ctx context.Context, id int64) (models.ClinicalStory, error) {
	story, err := c.clinicalStoryRepository.GetClinicalStoryByID(ctx, id)
	if err != nil {
		return models.ClinicalStory{}, fmt.Errorf("getting clinical story %d: %w", id, mapStoreError(err))
	}

	return story, nil
}

// UpdateClinicalStory applies a partial update to a story written by doctorID.
func (c *clinicalStoryService) UpdateClinicalStory(ctx context.Context, doctorID, id int64, update models.ClinicalStoryUpdate) (models.ClinicalStory, error) {
	if err := c.checkAuthor(ctx, doctorID, id); err != nil {
		return models.ClinicalStory{}, err
	}
	if update.IsEmpty() {
		return models.ClinicalStory{}, validators.NoInputDataError()
	}

	if update.Description != nil {
		description, err := c.sanitize(*update.Description)
		if err != nil {
			return models.ClinicalStory{}, err
		}
		update.Description = &description
	}

	story, err := c.clinicalStoryRepository.UpdateClinicalStory(ctx, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("clinical_story_id", id).Msg("clinical story update ended with error")
		return models.ClinicalStory{}, fmt.Errorf("updating clinical story %d: %w", id, mapStoreError(err))
	}

	return story, nil
}

// DeleteClinicalStory removes a story written by doctorID.
func (c *clinicalStoryService) DeleteClinicalStory(ctx context.Context, doctorID, id int64) error {
	if err := c.checkAuthor(ctx, doctorID, id); err != nil {
		return err
	}

	if err := c.clinicalStoryRepository.DeleteClinicalStory(ctx, id); err != nil {
		return fmt.Errorf("deleting clinical story %d: %w", id, mapStoreError(err))
	}

	return nil
}

// checkAuthor returns ErrResourceNotFound for an unknown story and
// ErrNotAuthorized when doctorID did not write it.
func (c *clinicalStoryService) checkAuthor(ctx context.Context, doctorID, id int64) error {
	story, err := c.GetClinicalStory(ctx, id)
	if err != nil {
		return err
	}

	if story.DoctorID != doctorID {
		logger.FromContext(ctx).Warn().
			Int64("caller_id", doctorID).
			Int64("author_id", story.DoctorID).
			Int64("clinical_story_id", id).
			Msg("attempt to change clinical story of another doctor")
		return fmt.Errorf("%w: doctor %d is not the author of clinical story %d", ErrNotAuthorized, doctorID, id)
	}

	return nil
}

// sanitize strips HTML from a description. A description made of markup only
// is reported as missing.
func (c *clinicalStoryService) sanitize(description string) (string, error) {
	sanitized := strings.TrimSpace(c.sanitizer.Sanitize(description))
	if sanitized == "" {
		return "", validators.MissingFieldError("description")
	}

	return sanitized, nil
}

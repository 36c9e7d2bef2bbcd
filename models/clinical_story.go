// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ClinicalStory is a single consultation note attached to a patient.
type ClinicalStory struct {
	ID        int64 `json:"id"`
	PatientID int64 `json:"pacient_id"`

	// DoctorID is the author. Only the author may change or remove the story.
	// Zero when the author account no longer exists.
	DoctorID int64 `json:"doctor_id,omitempty"`

	Reason      string `json:"reason"`
	Description string `json:"description"`
	Diagnosis   string `json:"diagnosis,omitempty"`
	Treatment   string `json:"treatment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ClinicalStory model.
func (c ClinicalStory) TableName() string {
	return "clinical_stories"
}

// ClinicalStoryInput is the input schema of POST /clinical_stories.
type ClinicalStoryInput struct {
	PatientID   int64  `json:"pacient_id" validate:"required,gt=0"`
	Reason      string `json:"reason" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=10000"`
	Diagnosis   string `json:"diagnosis" validate:"omitempty,max=255"`
	Treatment   string `json:"treatment" validate:"omitempty,max=2000"`
}

// ClinicalStoryUpdate is the input schema of PUT /clinical_stories/{id}.
// The owning patient cannot be changed.
type ClinicalStoryUpdate struct {
	Reason      *string `json:"reason" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,min=1,max=10000"`
	Diagnosis   *string `json:"diagnosis" validate:"omitempty,max=255"`
	Treatment   *string `json:"treatment" validate:"omitempty,max=2000"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u ClinicalStoryUpdate) IsEmpty() bool {
	return u.Reason == nil && u.Description == nil && u.Diagnosis == nil && u.Treatment == nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Patient is a person whose clinical history is kept by the service.
//
// Allergies and ClinicalStories are populated only when a single patient is
// read with its relations.
type Patient struct {
	ID int64 `json:"id"`

	// Document is the national identity document number. It is unique.
	Document string `json:"document"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// BirthDate is kept in YYYY-MM-DD form.
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	BloodType string `json:"blood_type,omitempty"`

	// CreatedBy is the doctor who registered the patient. Zero when that
	// doctor account no longer exists.
	CreatedBy int64     `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Allergies       []Allergy       `json:"allergies"`
	ClinicalStories []ClinicalStory `json:"clinical_stories"`
}

// TableName returns the name of the database table
// associated with the Patient model.
func (p Patient) TableName() string {
	return "pacients"
}

// PatientInput is the input schema of POST /pacients.
type PatientInput struct {
	Document  string `json:"document" validate:"required,max=32"`
	FirstName string `json:"first_name" validate:"required,max=80"`
	LastName  string `json:"last_name" validate:"required,max=80"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Gender    string `json:"gender" validate:"required,oneof=female male other"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	Address   string `json:"address" validate:"omitempty,max=255"`
	BloodType string `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`

	// Allergies are created together with the patient.
	Allergies []PatientAllergyInput `json:"allergies" validate:"omitempty,dive"`
}

// PatientAllergyInput describes an allergy declared inline on patient creation.
type PatientAllergyInput struct {
	Name     string `json:"name" validate:"required,max=80"`
	Severity string `json:"severity" validate:"omitempty,oneof=mild moderate severe"`
	Reaction string `json:"reaction" validate:"omitempty,max=255"`
}

// PatientUpdate is the input schema of PUT /pacients/{id}.
// Only non-nil fields are written.
type PatientUpdate struct {
	Document  *string `json:"document" validate:"omitempty,min=1,max=32"`
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=80"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=80"`
	BirthDate *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=female male other"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
	Address   *string `json:"address" validate:"omitempty,max=255"`
	BloodType *string `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u PatientUpdate) IsEmpty() bool {
	return u.Document == nil && u.FirstName == nil && u.LastName == nil && u.BirthDate == nil &&
		u.Gender == nil && u.Phone == nil && u.Address == nil && u.BloodType == nil
}

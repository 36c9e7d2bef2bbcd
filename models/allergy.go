package models

import "time"

// Allergy is a known allergy of a patient.
type Allergy struct {
	ID        int64     `json:"id"`
	PatientID int64     `json:"pacient_id"`
	Name      string    `json:"name"`
	Severity  string    `json:"severity,omitempty"`
	Reaction  string    `json:"reaction,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Allergy model.
func (a Allergy) TableName() string {
	return "allergies"
}

// AllergyInput is the input schema of POST /allergies.
type AllergyInput struct {
	PatientID int64  `json:"pacient_id" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required,max=80"`
	Severity  string `json:"severity" validate:"omitempty,oneof=mild moderate severe"`
	Reaction  string `json:"reaction" validate:"omitempty,max=255"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Doctor is an account of a physician who works with patient records.
// The password hash never leaves the server.
type Doctor struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Username is the unique login of the doctor.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the doctor's password.
	PasswordHash string `json:"-"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Specialty string `json:"specialty,omitempty"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Doctor model.
func (d Doctor) TableName() string {
	return "doctors"
}

// DoctorRegistration is the input schema of POST /register.
type DoctorRegistration struct {
	Username  string `json:"username" validate:"required,min=3,max=80"`
	Password  string `json:"password" validate:"required,min=6,max=128"`
	FirstName string `json:"first_name" validate:"required,max=80"`
	LastName  string `json:"last_name" validate:"required,max=80"`
	Email     string `json:"email" validate:"omitempty,email,max=120"`
	Specialty string `json:"specialty" validate:"omitempty,max=80"`
}

// Credentials is the input schema of POST /login.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// DoctorUpdate is the input schema of PUT /doctors/{id}.
// Only non-nil fields are written.
type DoctorUpdate struct {
	Password  *string `json:"password" validate:"omitempty,min=6,max=128"`
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=80"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=80"`
	Email     *string `json:"email" validate:"omitempty,email,max=120"`
	Specialty *string `json:"specialty" validate:"omitempty,max=80"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u DoctorUpdate) IsEmpty() bool {
	return u.Password == nil && u.FirstName == nil && u.LastName == nil && u.Email == nil && u.Specialty == nil
}

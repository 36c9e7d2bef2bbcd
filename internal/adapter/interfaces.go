// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the clinical-records REST API.
//
// The primary abstraction is [ServerAdapter], implemented over HTTP by
// [NewHTTPServerAdapter]. It keeps the token pair obtained by Login and
// attaches the right token to every request.
//
// Non-2xx responses are returned as *[ResponseError] values that unwrap to
// the sentinel errors of errors.go, so callers can use [errors.Is] (e.g.
// [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/clinical-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client side of the clinical-records API.
type ServerAdapter interface {
	// SetTokens replaces the stored token pair. An empty refresh token keeps
	// the stored one.
	SetTokens(tokens models.TokenPair)

	// Tokens returns the stored token pair.
	Tokens() models.TokenPair

	// Register creates a doctor account. It does not log in.
	Register(ctx context.Context, registration models.DoctorRegistration) (models.Doctor, error)

	// Login exchanges credentials for a token pair and stores it.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)

	// Logout revokes the stored access token on the server and forgets it.
	Logout(ctx context.Context) error

	// Refresh obtains a new access token with the stored refresh token.
	Refresh(ctx context.Context) (models.TokenPair, error)

	GetDoctor(ctx context.Context, id int64) (models.Doctor, error)
	UpdateDoctor(ctx context.Context, id int64, update models.DoctorUpdate) (models.Doctor, error)
	DeleteDoctor(ctx context.Context, id int64) error

	CreatePatient(ctx context.Context, input models.PatientInput) (models.Patient, error)
	GetPatient(ctx context.Context, id int64) (models.Patient, error)
	UpdatePatient(ctx context.Context, id int64, update models.PatientUpdate) (models.Patient, error)
	DeletePatient(ctx context.Context, id int64) error

	CreateClinicalStory(ctx context.Context, input models.ClinicalStoryInput) (models.ClinicalStory, error)
	GetClinicalStory(ctx context.Context, id int64) (models.ClinicalStory, error)
	UpdateClinicalStory(ctx context.Context, id int64, update models.ClinicalStoryUpdate) (models.ClinicalStory, error)
	DeleteClinicalStory(ctx context.Context, id int64) error

	CreateAllergy(ctx context.Context, input models.AllergyInput) (models.Allergy, error)
	GetAllergy(ctx context.Context, id int64) (models.Allergy, error)
	DeleteAllergy(ctx context.Context, id int64) error

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}

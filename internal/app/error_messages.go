// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// clinical-records server handlers, middleware and API client.
//
// All Msg* constants are human-readable message strings that are written into
// the "errors" or "message" field of JSON response bodies. Keeping them in one
// place ensures consistent wording throughout the API.
package app

const (
	// MsgResourceAlreadyExists is returned when a create or update collides
	// with an existing unique key (doctor username, patient document).
	MsgResourceAlreadyExists = "Resource with given primary key already exists"

	// MsgInvalidCredentials is returned when the supplied username/password
	// combination does not match any registered doctor.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgResourceNotFound is returned when the addressed record (or the
	// record it refers to) does not exist, and for unknown routes.
	MsgResourceNotFound = "Resource not found"

	// MsgNotAuthorized is returned when the bearer token is missing, invalid,
	// expired or revoked, or when the caller does not own the record.
	MsgNotAuthorized = "You have no access to this resource"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgLoggedOut is returned after a successful logout.
	MsgLoggedOut = "Successfully logged out"

	// MsgDoctorDeleted is returned after a doctor account is removed.
	MsgDoctorDeleted = "Doctor deleted"

	// MsgPatientDeleted is returned after a patient is removed.
	MsgPatientDeleted = "Pacient deleted"

	// MsgClinicalStoryDeleted is returned after a clinical story is removed.
	MsgClinicalStoryDeleted = "Clinical story deleted"

	// MsgAllergyDeleted is returned after an allergy is removed.
	MsgAllergyDeleted = "Allergy deleted"
)
